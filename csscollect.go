// Package csscollect consolidates the stylesheets of an HTML document.
//
// External stylesheet links and inline style blocks are merged into one
// stylesheet per run of adjacent tags, written either to generated CSS files
// or back into the document as <style> blocks. Fewer stylesheet references
// means fewer round-trips when the page loads.
//
// # Collecting a document
//
//	settings := csscollect.DefaultSettings()
//	settings.BaseDir = "public"
//	result, err := csscollect.Collect(html, settings)
//
// # Collecting a file in place
//
//	result, err := csscollect.CollectFile("public/index.html", csscollect.FileSettings{
//		Settings: csscollect.DefaultSettings(),
//	})
//
// # CLI Tool
//
// csscollect also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/csscollect/cmd/csscollect@latest
package csscollect
