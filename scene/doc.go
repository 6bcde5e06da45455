// Package scene reads drawing scenes from YAML documents and renders them
// onto surfaces.
//
// A scene lists drawing operations in canvas order. Named layers are drawn
// first, each onto its own raster surface, and their snapshots can then be
// placed with the image operation:
//
//	width: 200
//	height: 120
//	background: "#202020"
//	layers:
//	  - name: badge
//	    width: 40
//	    height: 40
//	    ops:
//	      - {op: fill_rect, rect: [0, 0, 40, 40], color: orange}
//	ops:
//	  - {op: save}
//	  - {op: clip_rect, rect: [10, 10, 100, 100]}
//	  - {op: line, p1: [0, 0], p2: [199, 119], color: "#ffffff80", width: 3}
//	  - {op: restore}
//	  - {op: image, from: badge, at: [150, 70]}
//	  - {op: text, at: [10, 100], text: "hello", color: white}
package scene
