// main.go
package main

import (
	"flag"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"quatrot/quat"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
)

const (
	shapeLorenz = "lorenz"
	shapeCube   = "cube"
)

func main() {
	graphics := flag.Bool("graphics", false, "Enable graphics visualization")
	axisFlag := flag.String("axis", "0,0,1", "Rotation axis as x,y,z")
	angle := flag.Float64("angle", 90, "Rotation angle in degrees")
	pointFlag := flag.String("point", "", "Point to rotate once, as x,y,z")
	shape := flag.String("shape", shapeLorenz, "Shape to render: lorenz or cube")
	spin := flag.Float64("spin", 1.0, "Spin speed multiplier for graphics mode")
	flag.Parse()

	axis, err := parsePoint(*axisFlag)
	if err != nil {
		log.WithError(err).Fatal("invalid -axis")
	}

	rot, err := quat.NewRotationAxis(axis, quat.DegToRad(*angle))
	if err != nil {
		log.WithError(err).Fatal("could not build rotation")
	}

	if *pointFlag != "" {
		p, err := parsePoint(*pointFlag)
		if err != nil {
			log.WithError(err).Fatal("invalid -point")
		}
		out := rot.Rotate(p)
		fmt.Printf("axis:   %v\nangle:  %v rad (%v deg)\nq:      %v\npoint:  %v\nresult: %v\n",
			rot.Axis(), rot.Angle(), quat.RadToDeg(rot.Angle()), rot.Quaternion(), p, out)
		return
	}

	if *graphics {
		if *shape != shapeLorenz && *shape != shapeCube {
			log.Fatalf("unknown shape %q", *shape)
		}
		if err := runGraphics(rot, axis, *shape, *spin); err != nil {
			log.WithError(err).Fatal("graphics error")
		}
		return
	}

	flag.Usage()
}

func parsePoint(s string) (quat.Point3D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return quat.Point3D{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var c [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return quat.Point3D{}, fmt.Errorf("component %d of %q: %w", i+1, s, err)
		}
		c[i] = v
	}
	return quat.NewPoint3D(c[0], c[1], c[2])
}

type lorenzParams struct {
	sigma, rho, beta, dt float64
}

var lorenzPresets = []lorenzParams{
	{10.0, 28.0, 8.0 / 3.0, 0.01}, // Classic
	{16.0, 45.6, 4.0, 0.008},      // Energetic
	{12.5, 35.2, 2.5, 0.012},      // Wide
	{8.5, 24.8, 6.2, 0.015},       // Compact
}

type spinRenderer struct {
	points              []quat.Point3D
	trail               []quat.Point3D
	rot                 *quat.Rotation
	baseAxis            quat.Point3D
	axisX, axisY, axisZ float64 // raw axis, renormalized by SetAxis
	theta               float64
	spin                float64
	autoSpin            bool
	shape               string
	x, y, z             float64
	params              lorenzParams
	trailLength         int
	frameCount          int
}

func newSpinRenderer(rot *quat.Rotation, axis quat.Point3D, shape string, spin float64) *spinRenderer {
	sr := &spinRenderer{
		rot:         rot,
		baseAxis:    axis,
		axisX:       axis.X(),
		axisY:       axis.Y(),
		axisZ:       axis.Z(),
		theta:       rot.Angle(),
		spin:        spin,
		autoSpin:    true,
		shape:       shape,
		trailLength: 150,
	}
	switch shape {
	case shapeCube:
		sr.points = cubePoints(16, 14)
	default:
		sr.points = make([]quat.Point3D, 0, 3000)
		sr.trail = make([]quat.Point3D, 0, sr.trailLength)
		sr.reseed()
	}
	return sr
}

// reseed picks a Lorenz preset and fresh initial conditions.
func (sr *spinRenderer) reseed() {
	r := time.Now().UnixNano()
	preset := lorenzPresets[r%int64(len(lorenzPresets))]
	preset.sigma += (float64((r>>8)%50)/100.0 - 0.25) * 2.0
	preset.rho += (float64((r>>16)%50)/100.0 - 0.25) * 3.0

	sr.params = preset
	sr.x = (float64((r>>32)%100)/100.0 - 0.5) * 15.0
	sr.y = (float64((r>>40)%100)/100.0 - 0.5) * 15.0
	sr.z = (float64((r>>48)%100)/100.0 - 0.5) * 15.0
	sr.points = sr.points[:0]
	sr.trail = sr.trail[:0]
}

// cubePoints samples the 12 edges of an axis-aligned cube centered at
// the origin.
func cubePoints(half float64, perEdge int) []quat.Point3D {
	corners := [8][3]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	points := make([]quat.Point3D, 0, len(edges)*perEdge)
	for _, e := range edges {
		a, b := corners[e[0]], corners[e[1]]
		for i := 0; i < perEdge; i++ {
			t := float64(i) / float64(perEdge-1)
			p, err := quat.NewPoint3D(
				half*(a[0]+(b[0]-a[0])*t),
				half*(a[1]+(b[1]-a[1])*t),
				half*(a[2]+(b[2]-a[2])*t),
			)
			if err != nil {
				log.WithError(err).Fatal("bad cube point")
			}
			points = append(points, p)
		}
	}
	return points
}

func (sr *spinRenderer) update() {
	if sr.shape == shapeLorenz {
		dx := sr.params.sigma * (sr.y - sr.x)
		dy := sr.x*(sr.params.rho-sr.z) - sr.y
		dz := sr.x*sr.y - sr.params.beta*sr.z

		sr.x += dx * sr.params.dt
		sr.y += dy * sr.params.dt
		sr.z += dz * sr.params.dt

		if p, err := quat.NewPoint3D(sr.x, sr.y, sr.z); err == nil {
			sr.trail = append(sr.trail, p)
			if len(sr.trail) > sr.trailLength {
				sr.trail = sr.trail[len(sr.trail)-sr.trailLength:]
			}
			if sr.frameCount%5 == 0 && len(sr.points) < cap(sr.points) {
				sr.points = append(sr.points, p)
			}
		}
	}

	if sr.autoSpin {
		sr.theta += 0.03 * sr.spin
		// theta stays finite, so the angle update cannot fail
		_ = sr.rot.SetAngle(sr.theta)
	}
	sr.frameCount++
}

// tiltAxis nudges the raw axis components; SetAxis renormalizes. A tilt
// into the zero vector is ignored.
func (sr *spinRenderer) tiltAxis(dx, dy, dz float64) {
	x, y, z := sr.axisX+dx, sr.axisY+dy, sr.axisZ+dz
	if err := sr.rot.SetAxis(x, y, z); err != nil {
		return
	}
	sr.axisX, sr.axisY, sr.axisZ = x, y, z
}

func (sr *spinRenderer) reset() {
	sr.axisX = sr.baseAxis.X()
	sr.axisY = sr.baseAxis.Y()
	sr.axisZ = sr.baseAxis.Z()
	sr.theta = 0
	// the base axis was validated at startup
	_ = sr.rot.SetAxis(sr.axisX, sr.axisY, sr.axisZ)
	_ = sr.rot.SetAngle(sr.theta)
}

// Shading character sets for different visual styles
var shadingStyles = [][]rune{
	// Heavy to light blocks
	{'█', '▉', '▊', '▋', '▌', '▍', '▎', '▏', '░', '▒', '▓', '·', '˙', ' '},
	// Circle variations
	{'●', '◉', '◎', '○', '◌', '◦', '∘', '·', '˙', '.'},
	// ASCII traditional
	{'@', '#', '&', '%', '$', 'W', 'M', 'H', '8', '0', 'Q', 'O', 'o', '*', '+', '=', '-', '^', ':', '.', ' '},
	// Dots and marks
	{'▪', '▫', '■', '□', '●', '○', '▲', '△', '♦', '◊', '▬', '▭', '·', '˙', ' '},
}

func getDepthChar(depth float64, style int) rune {
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}
	chars := shadingStyles[style%len(shadingStyles)]
	idx := int(depth * float64(len(chars)-1))
	return chars[idx]
}

// interpolateColor blends a purple-orange-green palette by position and
// darkens by depth.
func interpolateColor(t, depth float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}

	r1, g1, b1 := 120, 80, 255 // Deep purple
	r2, g2, b2 := 255, 150, 50 // Orange
	r3, g3, b3 := 50, 255, 120 // Green

	var r, g, b int
	if t < 0.5 {
		blend := t * 2
		r = int(float64(r1) + blend*float64(r2-r1))
		g = int(float64(g1) + blend*float64(g2-g1))
		b = int(float64(b1) + blend*float64(b2-b1))
	} else {
		blend := (t - 0.5) * 2
		r = int(float64(r2) + blend*float64(r3-r2))
		g = int(float64(g2) + blend*float64(g3-g2))
		b = int(float64(b2) + blend*float64(b3-b2))
	}

	depthFactor := 0.2 + 0.8*depth
	r = int(float64(r) * depthFactor)
	g = int(float64(g) * depthFactor)
	b = int(float64(b) * depthFactor)

	clamp := func(v int) int32 {
		if v > 255 {
			return 255
		}
		if v < 0 {
			return 0
		}
		return int32(v)
	}
	return tcell.NewRGBColor(clamp(r), clamp(g), clamp(b))
}

func (sr *spinRenderer) render(s tcell.Screen, w, h int, currentStyle int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	uiText := "QUATROT | Arrows:tilt axis [ ]:tilt z A:spin N:new S:style +/-:trail R:reset Q:quit"
	drawText(s, 1, 1, style, uiText)

	scale := math.Min(float64(w)/100.0, float64(h)/75.0) * 0.5
	centerX, centerY := float64(w)/2, float64(h)/2

	type renderPoint struct {
		x, y     int
		z        float64
		char     rune
		color    tcell.Color
		priority int
	}
	var renderPoints []renderPoint

	// Rotate everything once, tracking the depth range for shading.
	rotated := make([]quat.Point3D, 0, len(sr.points)+len(sr.trail))
	for _, p := range sr.points {
		rotated = append(rotated, sr.rot.Rotate(p))
	}
	for _, p := range sr.trail {
		rotated = append(rotated, sr.rot.Rotate(p))
	}
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, rp := range rotated {
		if rp.Z() < minZ {
			minZ = rp.Z()
		}
		if rp.Z() > maxZ {
			maxZ = rp.Z()
		}
	}
	depthRange := maxZ - minZ
	if depthRange == 0 {
		depthRange = 1
	}

	n := len(sr.points)
	for i, rp := range rotated[:n] {
		sx := int(rp.X()*scale + centerX)
		sy := int(rp.Y()*scale + centerY)
		if sx >= 0 && sx < w && sy >= 3 && sy < h-1 {
			depth := (rp.Z() - minZ) / depthRange
			colorT := float64(i) / float64(n)
			renderPoints = append(renderPoints, renderPoint{
				x: sx, y: sy, z: rp.Z(),
				char: getDepthChar(depth, currentStyle), color: interpolateColor(colorT, depth), priority: 1})
		}
	}

	trailLen := len(sr.trail)
	for i, rp := range rotated[n:] {
		sx := int(rp.X()*scale + centerX)
		sy := int(rp.Y()*scale + centerY)
		if sx >= 0 && sx < w && sy >= 1 && sy < h-1 {
			depth := (rp.Z() - minZ) / depthRange
			trailIntensity := float64(i) / float64(trailLen)
			combined := depth * (0.3 + 0.7*trailIntensity)

			var char rune
			if i >= trailLen-4 {
				char = '◉'
			} else if i >= trailLen-8 {
				char = '●'
			} else {
				char = getDepthChar(combined, 1)
			}

			renderPoints = append(renderPoints, renderPoint{
				x: sx, y: sy, z: rp.Z(),
				char: char, color: interpolateColor(0.9, combined), priority: 2})
		}
	}

	sort.Slice(renderPoints, func(a, b int) bool {
		if renderPoints[a].priority != renderPoints[b].priority {
			return renderPoints[a].priority < renderPoints[b].priority
		}
		return renderPoints[a].z < renderPoints[b].z
	})
	for _, p := range renderPoints {
		s.SetContent(p.x, p.y, p.char, nil, tcell.StyleDefault.Foreground(p.color))
	}

	info := fmt.Sprintf("axis: %v | angle: %.2f rad | q: %v | points: %d | frame: %d",
		sr.rot.Axis(), sr.rot.Angle(), sr.rot.Quaternion(), len(rotated), sr.frameCount)
	drawText(s, 1, h-2, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
}

func runGraphics(rot *quat.Rotation, axis quat.Point3D, shape string, spin float64) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	renderer := newSpinRenderer(rot, axis, shape, spin)
	quit := make(chan struct{})
	currentStyle := 2

	// Input handler
	go func() {
		defer close(quit)
		for {
			select {
			case <-quit:
				return
			default:
				ev := s.PollEvent()
				switch ev := ev.(type) {
				case *tcell.EventKey:
					switch ev.Key() {
					case tcell.KeyEscape, tcell.KeyCtrlC:
						return
					case tcell.KeyUp:
						renderer.tiltAxis(0, -0.15, 0)
					case tcell.KeyDown:
						renderer.tiltAxis(0, 0.15, 0)
					case tcell.KeyLeft:
						renderer.tiltAxis(-0.15, 0, 0)
					case tcell.KeyRight:
						renderer.tiltAxis(0.15, 0, 0)
					case tcell.KeyRune:
						switch ev.Rune() {
						case 'q', 'Q':
							return
						case '[':
							renderer.tiltAxis(0, 0, -0.15)
						case ']':
							renderer.tiltAxis(0, 0, 0.15)
						case 'r':
							renderer.reset()
						case 'a', ' ':
							renderer.autoSpin = !renderer.autoSpin
						case 'n':
							if renderer.shape == shapeLorenz {
								renderer.reseed()
							}
						case 's', 'S':
							currentStyle = (currentStyle + 1) % len(shadingStyles)
						case '+', '=':
							if renderer.trailLength < 400 {
								renderer.trailLength += 20
							}
						case '-', '_':
							if renderer.trailLength > 20 {
								renderer.trailLength -= 20
							}
						}
					}
				case *tcell.EventResize:
					s.Sync()
				}
			}
		}
	}()

	// Render loop
	ticker := time.NewTicker(40 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			renderer.update()
			s.Clear()
			w, h := s.Size()

			if w <= 15 || h <= 8 {
				continue
			}

			renderer.render(s, w, h, currentStyle)
			s.Show()
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
