// Package launcher turns a chosen presentation option into a child process
// and runs it with the terminal attached.
//
// Workspace options run the package's own script through the package manager
// from the workspace root:
//
//	pnpm --filter @talks/intro run dev
//
// Slides options invoke the presentation tool directly from the folder that
// holds the slides file:
//
//	npx slidev slides.md --open
//	npx slidev export --timeout 60000 --wait-until domcontentloaded slides.md
package launcher
