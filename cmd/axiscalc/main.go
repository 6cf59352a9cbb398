// Command axiscalc evaluates single vector, quaternion and color operations
// from the command line.
//
//	axiscalc axisangle -axis 0,1,0 -angle 90
//	axiscalc matrix -q 0,0.7071,0,0.7071
//	axiscalc hsv -rgb 255,128,0
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"axis/color"
	"axis/mathf"
	"axis/mtx"
	"axis/quat"
	"axis/vec"
)

var errUsage = errors.New("usage")

type command struct {
	help string
	run  func(fs *flag.FlagSet, args []string, w io.Writer) error
}

var commands = map[string]command{
	"axisangle": {"quaternion from -axis x,y,z and -angle degrees", cmdAxisAngle},
	"euler":     {"quaternion from -angles x,y,z radians", cmdEuler},
	"lookrot":   {"quaternion facing -forward x,y,z with -up x,y,z", cmdLookRot},
	"angleaxis": {"axis and angle (degrees) of -q x,y,z,w", cmdAngleAxis},
	"matrix":    {"rotation matrix of -q x,y,z,w", cmdMatrix},
	"sphere":    {"PointOnSphere for -r, -yaw, -pitch degrees", cmdPolar(vec.PointOnSphere)},
	"cylinder":  {"PointOnCylinder for -r, -yaw, -pitch degrees", cmdPolar(vec.PointOnCylinder)},
	"hsv":       {"HSV of -rgb r,g,b", cmdHSV},
	"rgb":       {"RGB and RGB565 of -hsv h,s,v", cmdRGB},
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			_, _ = fmt.Fprintf(os.Stderr, "axiscalc: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(stderr)
		return fmt.Errorf("unknown op: %s", args[0])
	}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	return cmd.run(fs, args[1:], stdout)
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	_, _ = fmt.Fprintln(w, "usage: axiscalc <op> [flags]")
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].help)
	}
}

func cmdAxisAngle(fs *flag.FlagSet, args []string, w io.Writer) error {
	axis := fs.String("axis", "0,1,0", "Rotation axis.")
	angle := fs.Float64("angle", 0, "Angle in degrees.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	a, err := parseVec3(*axis)
	if err != nil {
		return fmt.Errorf("-axis: %w", err)
	}
	printQuat(w, quat.AxisAngle(a, mathf.DToRF(float32(*angle))))
	return nil
}

func cmdEuler(fs *flag.FlagSet, args []string, w io.Writer) error {
	angles := fs.String("angles", "0,0,0", "Per-axis angles in radians.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	e, err := parseVec3(*angles)
	if err != nil {
		return fmt.Errorf("-angles: %w", err)
	}
	printQuat(w, quat.FromEuler(e))
	return nil
}

func cmdLookRot(fs *flag.FlagSet, args []string, w io.Writer) error {
	forward := fs.String("forward", "0,0,1", "Forward direction.")
	up := fs.String("up", "0,1,0", "Up direction.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := parseVec3(*forward)
	if err != nil {
		return fmt.Errorf("-forward: %w", err)
	}
	u, err := parseVec3(*up)
	if err != nil {
		return fmt.Errorf("-up: %w", err)
	}
	printQuat(w, quat.FromLookRotation(f, u))
	return nil
}

func cmdAngleAxis(fs *flag.FlagSet, args []string, w io.Writer) error {
	q, err := parseQuatFlag(fs, args)
	if err != nil {
		return err
	}
	axis, angle := q.ToAngleAxis()
	_, _ = fmt.Fprintf(w, "axis %s angle %s\n", fmtVec3(axis), fmtF(mathf.RToDF(angle)))
	return nil
}

func cmdMatrix(fs *flag.FlagSet, args []string, w io.Writer) error {
	q, err := parseQuatFlag(fs, args)
	if err != nil {
		return err
	}
	printMatrix(w, q.ToMatrix())
	return nil
}

func cmdPolar(f func(r, yaw, pitch float32) vec.Vec3f) func(*flag.FlagSet, []string, io.Writer) error {
	return func(fs *flag.FlagSet, args []string, w io.Writer) error {
		r := fs.Float64("r", 1, "Radius.")
		yaw := fs.Float64("yaw", 0, "Yaw in degrees.")
		pitch := fs.Float64("pitch", 0, "Pitch in degrees.")
		if err := fs.Parse(args); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, fmtVec3(f(float32(*r), float32(*yaw), float32(*pitch))))
		return nil
	}
}

func cmdHSV(fs *flag.FlagSet, args []string, w io.Writer) error {
	rgb := fs.String("rgb", "0,0,0", "8-bit channels r,g,b.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ch, err := parseInts(*rgb, 3)
	if err != nil {
		return fmt.Errorf("-rgb: %w", err)
	}
	hsv := color.RGBToHSV(uint8(ch[0]), uint8(ch[1]), uint8(ch[2]))
	_, _ = fmt.Fprintf(w, "h %s s %s v %s\n", fmtF(hsv.H), fmtF(hsv.S), fmtF(hsv.V))
	return nil
}

func cmdRGB(fs *flag.FlagSet, args []string, w io.Writer) error {
	hsv := fs.String("hsv", "0,0,0", "Hue in degrees, saturation and value in [0,1].")
	if err := fs.Parse(args); err != nil {
		return err
	}
	v, err := parseFloats(*hsv, 3)
	if err != nil {
		return fmt.Errorf("-hsv: %w", err)
	}
	c := color.HSVToRGB(v[0], v[1], v[2])
	_, _ = fmt.Fprintf(w, "r %d g %d b %d rgb565 0x%04x\n", c.R, c.G, c.B, uint16(color.PackRGB565(c.R, c.G, c.B)))
	return nil
}

func parseQuatFlag(fs *flag.FlagSet, args []string) (quat.QuatF, error) {
	s := fs.String("q", "0,0,0,1", "Quaternion x,y,z,w.")
	if err := fs.Parse(args); err != nil {
		return quat.QuatF{}, err
	}
	v, err := parseFloats(*s, 4)
	if err != nil {
		return quat.QuatF{}, fmt.Errorf("-q: %w", err)
	}
	return quat.QuatF{X: v[0], Y: v[1], Z: v[2], W: v[3]}, nil
}

func parseVec3(s string) (vec.Vec3f, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return vec.Vec3f{}, err
	}
	return vec.Vec3f{X: v[0], Y: v[1], Z: v[2]}, nil
}

func parseFloats(s string, n int) ([]float32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %q", n, s)
	}
	out := make([]float32, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %q", n, s)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, err
		}
		out[i] = int(v)
	}
	return out, nil
}

func fmtF(f float32) string {
	s := strconv.FormatFloat(float64(f), 'f', 4, 32)
	if s == "-0.0000" {
		s = "0.0000"
	}
	return s
}

func fmtVec3(v vec.Vec3f) string {
	return fmtF(v.X) + " " + fmtF(v.Y) + " " + fmtF(v.Z)
}

func printQuat(w io.Writer, q quat.QuatF) {
	_, _ = fmt.Fprintf(w, "%s %s %s %s\n", fmtF(q.X), fmtF(q.Y), fmtF(q.Z), fmtF(q.W))
}

func printMatrix(w io.Writer, m mtx.Mtx4F) {
	for _, row := range m {
		_, _ = fmt.Fprintf(w, "%s %s %s %s\n", fmtF(row[0]), fmtF(row[1]), fmtF(row[2]), fmtF(row[3]))
	}
}
