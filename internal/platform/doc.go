// Package platform wraps the desktop services the CLI shells out to: desktop
// notifications, moving files to the trash, asking the file manager for its
// front window's directory, and opening folders or files for editing.
//
// Each service is configured by a command line. The value "auto" selects a
// built-in default for the current OS and "none" disables the service where
// that makes sense. Custom command lines are split with shell quoting rules
// and may reference {title}, {message} and {path} placeholders; when none is
// used, the values are appended as trailing arguments.
package platform
