// Package mdscrape extracts the primary readable content of a web page and
// converts it into a markdown document with a metadata header.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, sqlite/).
package mdscrape
