package web

// User-visible notices.
const (
	msgNotExist       = "%s does not exist."
	msgUpdated        = "%s has been updated."
	msgCreated        = "%s has been created."
	msgDeleted        = "%s has been deleted."
	msgExists         = "%s already exists."
	msgBadName        = "%s is not a valid document name."
	msgNameRequired   = "A name is required."
	msgBadCredentials = "Invalid credentials"
	msgWelcome        = "Welcome!"
	msgSignedOut      = "You have been signed out."
	msgUnavailable    = "The document store is unavailable."
)
