// Package ordering produces deterministic initial vertex orderings over a
// graph.Graph, used by the runner to decide branching order before
// transcoding into a bitgraph.BitGraph.
//
// Every function here is a pure, deterministic total order: re-running any
// of them on the same graph produces byte-identical output. The primary
// tiebreak convention — ascending degree, descending vertex number — is
// followed exactly as specified, since bound tightness depends on it
// reproducibly.
//
// Grounded on the source's graph/degree_sort.cc, graph/min_width_sort.cc
// and graph/dkrtj_sort.cc (see DESIGN.md).
package ordering

import (
	"sort"

	"github.com/parasols-go/maxclique/graph"
)

// Function names a supported ordering by name, used by the CLI --order
// flag and by runner.Params.OrderFunc.
type Function string

// Supported ordering names.
const (
	Degree          Function = "deg"
	DegreeReverse   Function = "deg-reverse"
	ExDegree        Function = "ex"
	ExDegreeReverse Function = "ex-reverse"
	DynExDegree     Function = "dynex"
	MinWidth        Function = "mw"
	MinWidthReverse Function = "mw-reverse"
	MinWidthSI      Function = "mwsi"
	MinWidthSSI     Function = "mwssi"
	None            Function = "none"
	NoneReverse     Function = "none-reverse"
)

// Order computes the permutation for the named Function on g: a slice p of
// length g.Size() such that p[i] is the original vertex placed at position
// i. An unknown Function returns None's identity order.
func Order(g *graph.Graph, fn Function) []int {
	switch fn {
	case Degree:
		return degreeSort(g, false)
	case DegreeReverse:
		return degreeSort(g, true)
	case ExDegree:
		return exDegreeSort(g, false)
	case ExDegreeReverse:
		return exDegreeSort(g, true)
	case DynExDegree:
		return dynExDegreeSort(g)
	case MinWidth:
		return minWidthSort(g, false)
	case MinWidthReverse:
		return minWidthSort(g, true)
	case MinWidthSI:
		return minWidthSISort(g, false)
	case MinWidthSSI:
		return minWidthSISort(g, true)
	case NoneReverse:
		return reversed(identity(g.Size()))
	default:
		return identity(g.Size())
	}
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

func reversed(p []int) []int {
	out := make([]int, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}

	return out
}

// degreeSort orders non-decreasing by degree, ties broken on higher vertex
// number first (so it is eliminated earliest in branching).
func degreeSort(g *graph.Graph, reverse bool) []int {
	n := g.Size()
	degrees := make([]int, n)
	for v := 0; v < n; v++ {
		degrees[v] = g.Degree(v)
	}

	p := identity(n)
	sort.Slice(p, func(i, j int) bool {
		a, b := p[i], p[j]

		return less(reverse, degrees[a] < degrees[b] || (degrees[a] == degrees[b] && a > b))
	})

	return p
}

// less applies the reverse flag to cond as an XOR: it returns cond when
// reverse is false and !cond when reverse is true.
func less(reverse, cond bool) bool {
	return reverse != cond
}

func exDegrees(g *graph.Graph, degrees []int) []int {
	n := g.Size()
	ex := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if g.Adjacent(i, j) {
				ex[i] += degrees[j]
			}
		}
	}

	return ex
}

// exDegreeSort orders by degree, ties broken by sum of neighbour degrees,
// then by vertex number.
func exDegreeSort(g *graph.Graph, reverse bool) []int {
	n := g.Size()
	degrees := make([]int, n)
	for v := 0; v < n; v++ {
		degrees[v] = g.Degree(v)
	}
	ex := exDegrees(g, degrees)

	p := identity(n)
	sort.Slice(p, func(i, j int) bool {
		a, b := p[i], p[j]
		cond := degrees[a] < degrees[b] ||
			(degrees[a] == degrees[b] && ex[a] < ex[b]) ||
			(degrees[a] == degrees[b] && ex[a] == ex[b] && a > b)

		return less(reverse, cond)
	})

	return p
}

// dynExDegreeSort is ex-degree, but after each placement the just-placed
// vertex's contribution is removed from remaining degrees before
// re-sorting the unplaced suffix.
func dynExDegreeSort(g *graph.Graph) []int {
	n := g.Size()
	degrees := make([]int, n)
	for v := 0; v < n; v++ {
		degrees[v] = g.Degree(v)
	}
	ex := exDegrees(g, degrees)

	p := identity(n)
	unsortedEnd := n
	for unsortedEnd > 0 {
		window := p[:unsortedEnd]
		sort.Slice(window, func(i, j int) bool {
			a, b := window[i], window[j]

			return degrees[a] < degrees[b] ||
				(degrees[a] == degrees[b] && ex[a] < ex[b]) ||
				(degrees[a] == degrees[b] && ex[a] == ex[b] && a > b)
		})

		last := p[unsortedEnd-1]
		for i := 0; i < n; i++ {
			if g.Adjacent(i, last) {
				degrees[i]--
			}
		}
		unsortedEnd--
	}

	return p
}

// minWidthSort repeatedly removes the minimum-degree vertex from the
// induced subgraph on the not-yet-placed set (degeneracy ordering),
// prepending (direction=false) or appending (reverse=true) it to the
// result.
func minWidthSort(g *graph.Graph, reverse bool) []int {
	n := g.Size()
	degrees := make([]int, n)
	for v := 0; v < n; v++ {
		degrees[v] = g.Degree(v)
	}

	remaining := identity(n)
	result := make([]int, 0, n)
	for len(remaining) > 0 {
		minIdx := 0
		for i := 1; i < len(remaining); i++ {
			a, b := remaining[i], remaining[minIdx]
			if degrees[a] < degrees[b] || (degrees[a] == degrees[b] && a > b) {
				minIdx = i
			}
		}
		v := remaining[minIdx]
		result = append(result, v)

		for _, u := range remaining {
			if g.Adjacent(v, u) {
				degrees[u]--
			}
		}
		remaining = append(remaining[:minIdx], remaining[minIdx+1:]...)
	}

	if reverse {
		return result
	}

	return reversed(result)
}

// minWidthSISort is minWidthSort with an ex-degree tiebreak during removal
// and a final top-quartile re-sort by original degree (descending).
// strict selects mwssi (strict, no extra exdegree recompute per step)
// versus mwsi (recomputes exdegrees after every removal).
func minWidthSISort(g *graph.Graph, strict bool) []int {
	n := g.Size()
	degrees := make([]int, n)
	for v := 0; v < n; v++ {
		degrees[v] = g.Degree(v)
	}
	unadulterated := append([]int(nil), degrees...)
	ex := exDegrees(g, degrees)

	remaining := identity(n)
	result := make([]int, 0, n)
	for len(remaining) > 0 {
		minIdx := 0
		for i := 1; i < len(remaining); i++ {
			a, b := remaining[i], remaining[minIdx]
			cond := degrees[a] < degrees[b] ||
				(degrees[a] == degrees[b] && ex[a] < ex[b]) ||
				(degrees[a] == degrees[b] && ex[a] == ex[b] && a < b)
			if cond {
				minIdx = i
			}
		}
		v := remaining[minIdx]
		result = append(result, v)

		for _, u := range remaining {
			if g.Adjacent(v, u) {
				degrees[u]--
			}
		}
		remaining = append(remaining[:minIdx], remaining[minIdx+1:]...)

		if !strict {
			for i := 0; i < n; i++ {
				ex[i] = 0
			}
			for i := 0; i < n; i++ {
				for _, u := range remaining {
					if g.Adjacent(i, u) {
						ex[i] += degrees[u]
					}
				}
			}
		}
	}

	p := reversed(result)

	// Top-quartile re-sort by original degree, descending, stable.
	q := len(p) / 4
	top := p[:q]
	sort.SliceStable(top, func(i, j int) bool {
		return unadulterated[top[i]] > unadulterated[top[j]]
	})

	return p
}
