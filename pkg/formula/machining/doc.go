// Package machining provides turning and milling formulas.
package machining
