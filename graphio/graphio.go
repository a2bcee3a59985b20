// Package graphio reads graph.Graph values from the file formats used by
// the DIMACS maximum-clique benchmark suite and common subgraph-matching
// corpora: DIMACS, zero/one-indexed edge-pairs, Pajek .net, METIS, MIVIA
// binary, LAD, LV, and bracketed adjacency-matrix text.
//
// Grounded on the source's graph/dimacs.hh, pairs.cc, net.cc, metis.cc,
// mivia.cc, lad.cc, lv.cc, adj.cc and file_formats.hh (the format-name
// dispatch table).
package graphio

import (
	"fmt"

	"github.com/parasols-go/maxclique/graph"
)

// FileError reports a malformed or unreadable graph file. Grounded on the
// source's GraphFileError: a filename plus a human-readable message.
type FileError struct {
	Filename string
	Message  string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("error reading graph file %q: %s", e.Filename, e.Message)
}

func fileErr(filename, format string, args ...interface{}) error {
	return &FileError{Filename: filename, Message: fmt.Sprintf(format, args...)}
}

// Options controls reader leniency, mirroring the source's GraphOptions
// bitmask (only AllowLoops is exercised by any reader here).
type Options struct {
	// AllowLoops permits self-referencing edges rather than treating them
	// as a malformed file.
	AllowLoops bool
}

// Format names a supported file format for the Read dispatch table.
type Format string

// Supported format names, matching the source's graph_file_formats table.
const (
	Dimacs  Format = "dimacs"
	Pairs0  Format = "pairs0"
	Pairs1  Format = "pairs1"
	Net     Format = "net"
	Metis   Format = "metis"
	Mivia   Format = "mivia"
	Lad     Format = "lad"
	LV      Format = "lv"
	Adj     Format = "adj"
)

// Read dispatches to the reader named by format.
func Read(format Format, filename string, opts Options) (*graph.Graph, error) {
	switch format {
	case Dimacs:
		return ReadDimacs(filename, opts)
	case Pairs0:
		return ReadPairs(filename, false, opts)
	case Pairs1:
		return ReadPairs(filename, true, opts)
	case Net:
		return ReadNet(filename)
	case Metis:
		return ReadMetis(filename, opts)
	case Mivia:
		return ReadMivia(filename, opts)
	case Lad:
		return ReadLad(filename, opts)
	case LV:
		return ReadLV(filename)
	case Adj:
		return ReadAdj(filename)
	default:
		return nil, fileErr(filename, "unknown format %q", format)
	}
}
