// Package roster holds the champions the tracker offers.
//
// The default roster is embedded as YAML. Each champion carries a generated
// SVG icon as a data URI, so the page needs no image assets.
package roster
