// Package document reads Excalidraw drawings into the element model the
// renderer consumes.
//
// # Format
//
// An Excalidraw file is a JSON object with an "elements" array. Each element
// carries its kind, bounding box, paint attributes and, for lines and
// arrows, a list of points relative to the element origin:
//
//	{
//	  "type": "excalidraw",
//	  "elements": [
//	    {"type": "rectangle", "x": 10, "y": 10, "width": 120, "height": 60,
//	     "strokeColor": "#1e1e1e", "backgroundColor": "transparent",
//	     "strokeWidth": 2, "roughness": 1, "opacity": 100, "seed": 42}
//	  ]
//	}
//
// Only the fields the renderer needs are decoded; everything else in the
// file is ignored. The legacy "startArrowType" and "endArrowType" keys are
// accepted as fallbacks for "startArrowhead" and "endArrowhead".
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, [ReadJSON] to read
// from any io.Reader, or [Parse] for bytes already in memory. All three
// return *errors.Error values with code INVALID_DOCUMENT or FILE_NOT_FOUND.
//
// # View box
//
// [Document.ViewBox] is the canvas the sinks draw on: the union of all
// visible element boxes padded by [Padding] on every side.
package document
