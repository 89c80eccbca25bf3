package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/glrast/swgl/pkg/logging"
	"github.com/glrast/swgl/pkg/math3d"
)

// ParseOBJ reads the Wavefront OBJ subset this engine supports:
//
//	v  x y z        — push a position
//	vt u v [w]      — push a UV (w, if present, is discarded)
//	vn x y z        — push a normal
//	f  ...          — push a triangular face, in one of three forms:
//	                  "a b c"          (positions only)
//	                  "a/ta b/tb c/tc" (positions + UVs)
//	                  "a/ta/na ..."    (positions + UVs + normals), or
//	                  "a//na ..."      (positions + normals, no UVs)
//
// Indices are 1-based in the file and converted to 0-based. A line this
// parser cannot make sense of is skipped and logged at warn level rather
// than aborting the whole parse.
func ParseOBJ(r io.Reader) (*Model, error) {
	m := &Model{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				warnSkip(lineNo, line, err)
				continue
			}
			m.Positions = append(m.Positions, p)
		case "vt":
			uv, err := parseUV(fields[1:])
			if err != nil {
				warnSkip(lineNo, line, err)
				continue
			}
			m.UVs = append(m.UVs, uv)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				warnSkip(lineNo, line, err)
				continue
			}
			m.Normals = append(m.Normals, n)
		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				warnSkip(lineNo, line, err)
				continue
			}
			m.Faces = append(m.Faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	return m, nil
}

func warnSkip(lineNo int, line string, err error) {
	logging.Logger().Warn("skipping malformed obj line", "line", lineNo, "text", line, "error", err)
}

func parseVec3(f []string) (math3d.Vec3, error) {
	if len(f) < 3 {
		return math3d.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(f))
	}
	x, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return math3d.Vec3{}, err
	}
	y, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return math3d.Vec3{}, err
	}
	z, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return math3d.Vec3{}, err
	}
	return math3d.V3(x, y, z), nil
}

func parseUV(f []string) (math3d.Vec2, error) {
	if len(f) < 2 {
		return math3d.Vec2{}, fmt.Errorf("expected at least 2 components, got %d", len(f))
	}
	u, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return math3d.Vec2{}, err
	}
	v, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return math3d.Vec2{}, err
	}
	// f[2], the optional w, is not read: it is discarded unparsed.
	return math3d.UV(u, v), nil
}

func parseFace(f []string) (Face, error) {
	if len(f) != 3 {
		return Face{}, fmt.Errorf("only triangular faces are supported, got %d vertices", len(f))
	}

	var face Face
	for i, tok := range f {
		parts := strings.Split(tok, "/")
		pos, err := strconv.Atoi(parts[0])
		if err != nil {
			return Face{}, fmt.Errorf("bad position index %q: %w", parts[0], err)
		}
		face.Position[i] = pos - 1
		face.UV[i] = -1
		face.Normal[i] = -1

		switch len(parts) {
		case 1:
			// "a" — position only.
		case 2:
			// "a/ta" — position + UV.
			uv, err := strconv.Atoi(parts[1])
			if err != nil {
				return Face{}, fmt.Errorf("bad uv index %q: %w", parts[1], err)
			}
			face.UV[i] = uv - 1
		case 3:
			if parts[1] == "" {
				// "a//na" — position + normal, no UV.
				n, err := strconv.Atoi(parts[2])
				if err != nil {
					return Face{}, fmt.Errorf("bad normal index %q: %w", parts[2], err)
				}
				face.Normal[i] = n - 1
				continue
			}
			// "a/ta/na" — position + UV + normal.
			uv, err := strconv.Atoi(parts[1])
			if err != nil {
				return Face{}, fmt.Errorf("bad uv index %q: %w", parts[1], err)
			}
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return Face{}, fmt.Errorf("bad normal index %q: %w", parts[2], err)
			}
			face.UV[i] = uv - 1
			face.Normal[i] = n - 1
		default:
			return Face{}, fmt.Errorf("unrecognized face vertex %q", tok)
		}
	}
	return face, nil
}
