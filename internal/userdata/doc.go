// Package userdata manages the on-disk storage of the two template
// registries: the local/ folder holding file and directory templates and the
// remote file listing template URLs. It resolves the default data root,
// creates the layout on first use, and backs the doctor storage check.
package userdata
