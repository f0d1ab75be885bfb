// Package templates implements the minimal template collaborator: plain
// {{ variable }} substitution over files loaded from a template folder.
//
// Render accepts one template name or an ordered list of candidates and
// uses the first file that exists; when none does, it fails with
// ErrTemplateNotFound. There is no logic, inheritance, or escaping; the
// substitution is purely textual.
package templates
