// Package crease turns a free-text cricket match situation into a heuristic
// win probability and a short commentary paragraph.
//
// Quick start:
//
//	r := crease.Analyze("India needs 20 runs in 6 balls, 2 wickets left")
//	if r.Error != nil {
//	    fmt.Println(*r.Error)
//	    return
//	}
//	fmt.Println(*r.WinProbability, r.Band().Label) // 3 Long Shot
//	fmt.Println(*r.Analysis)
//
// Analysis is deterministic and stateless: the same input always produces the
// same result, and all functions are safe for concurrent use.
package crease
