// Command rollspline evaluates a roll spline rig file and prints the
// resulting joint transforms.
//
//	rollspline -rig arm.yaml -joints 5 -format yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/rollspline"
	"github.com/npillmayer/rollspline/rig"
)

func main() {
	var (
		rigPath = flag.String("rig", "", "Rig description file (.yaml, .yml or .toml)")
		u       = flag.Float64("u", -1, "Curve parameter in [0,1]; overrides the rig's parameter")
		joints  = flag.Int("joints", 0, "Evaluate this many evenly spaced joints instead of a single u")
		format  = flag.String("format", "text", "Output format: text, yaml, toml")
	)
	flag.Parse()

	if *rigPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(os.Stdout, *rigPath, *u, *joints, *format); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, path string, u float64, joints int, format string) error {
	r, err := rig.Load(path)
	if err != nil {
		return err
	}
	controls, err := r.EvalControls()
	if err != nil {
		return err
	}
	params, err := r.EvalParams()
	if err != nil {
		return err
	}
	if u >= 0 {
		params.U = u
	}
	var results []rig.Joint
	if joints > 0 {
		matrices, err := rollspline.EvaluateChain(controls, params, joints)
		if err != nil {
			return err
		}
		for i, m := range matrices {
			ju := 0.0
			if joints > 1 {
				ju = float64(i) / float64(joints-1)
			}
			results = append(results, rig.NewJoint(ju, m))
		}
	} else {
		m, err := rollspline.Evaluate(controls, params)
		if err != nil {
			return err
		}
		results = append(results, rig.NewJoint(params.U, m))
	}
	if format == "text" {
		printText(w, results)
		return nil
	}
	f, err := rig.ParseFormat(format)
	if err != nil {
		return err
	}
	return rig.EncodeJoints(w, results, f)
}

func printText(w io.Writer, joints []rig.Joint) {
	for _, j := range joints {
		var m mgl64.Mat4
		copy(m[:], j.Matrix)
		fmt.Fprintf(w, "u = %.4g\n", j.U)
		for row := 0; row < 4; row++ {
			r := m.Row(row)
			fmt.Fprintf(w, "  %10.4f %10.4f %10.4f %10.4f\n", r[0], r[1], r[2], r[3])
		}
	}
}
