// Package grimbound renders circular token images for tabletop
// social-deduction scripts.
//
// # Overview
//
// Given a list of character records and a style configuration, the
// package produces one raster token per character, one per reminder
// string, and a single trademark/credit token. Rendering is headless
// and pure: images come in as already-resolved bytes or local files,
// finished tokens go out as in-memory surfaces ready for PNG encoding
// or print-sheet layout by the caller.
//
// # Quick Start
//
//	fonts := grimbound.NewFontLibrary()
//	_ = fonts.RegisterFile("Dumbledor", "fonts/dumbledor.ttf")
//
//	loader := assets.NewLoader(assets.DirResolver{Root: "assets"})
//	r, _ := grimbound.NewRenderer(loader, fonts)
//
//	report, err := r.GenerateAll(ctx, characters, func(cur, total int) {
//	    fmt.Printf("%d of %d\r", cur, total)
//	})
//
// # Architecture
//
// The package is organized into:
//   - Batch orchestration: GenerateAll, filename assignment, progress
//   - Token compositing: Renderer (clip, background, portrait, text)
//   - Layout: cover-fit placement and curved-text arc layout
//   - Resources: assets.Loader (cached images), FontLibrary (faces)
//
// # Coordinate System
//
// Standard raster coordinates: origin at top-left, y increases down,
// angles in radians with 0 pointing right. The bottom of a token is
// at angle pi/2.
//
// # Failure Model
//
// Missing assets degrade (flat fill, skipped portrait) and are
// reported per item; only the inability to allocate a drawing surface
// is fatal to a batch.
package grimbound
