// Package scanner discovers slide-deck presentations in a workspace.
//
// The scanner package is responsible for:
//   - Listing the immediate folders of the presentations directory
//   - Probing each folder for a package.json manifest and a slides.md file
//   - Resolving a title from manifest fields or the slides content
//   - Returning records in a stable, locale-aware folder order
//
// Folders are inspected concurrently on a bounded worker group. Failures inside
// a single folder degrade that folder's data and are reported as warnings;
// only a failure to list the presentations directory itself is fatal.
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
