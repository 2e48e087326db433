// Package catalog aggregates the formulas of every domain into one flat,
// domain-qualified namespace such as "quality.cpk" or "electronics.ohms_law".
//
// The package-level functions operate on a shared registry that is built on
// first use. Evaluate converts formula failures into coded foundation errors
// so that callers can classify them with errors.Is against a coded error or
// map them to an exit status:
//
//	out, err := catalog.Evaluate("quality.cpk", map[string]interface{}{
//		"usl": 10, "lsl": 0, "mean": 5, "stdDev": 1,
//	})
//	if err != nil {
//		os.Exit(mdwerror.ExitCode(err))
//	}
package catalog
