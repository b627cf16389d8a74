package flatcms_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/flatcms"
)

func Example() {
	base, err := os.MkdirTemp("", "flatcms-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(base)

	app, err := flatcms.New(base, flatcms.WithTestMode(true))
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	if _, err := app.Service.CreateDocument(ctx, "about.md"); err != nil {
		panic(err)
	}
	if err := app.Service.SaveDocument(ctx, "about.md", []byte("A journey...")); err != nil {
		panic(err)
	}

	names, _ := app.Service.ListDocuments(ctx)
	fmt.Println(names)
	fmt.Println(filepath.Base(app.Root))
	// Output:
	// [about.md]
	// data
}
