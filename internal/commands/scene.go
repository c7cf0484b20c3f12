package commands

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"credenza/internal/editor"
	"credenza/internal/scene"
)

// Toggles switch the viewer's overlays. Nil entries are ignored.
type Toggles struct {
	Grid  func(show bool)
	FPS   func(show bool)
	Mem   func(show bool)
	Stats func(show bool)
}

// RegisterScene adds the scene editing commands, all acting on s. Command output is
// passed to out one line at a time.
func RegisterScene(r *Registry, s *editor.Session, out func(string), t Toggles) {
	say := func(format string, args ...any) { out(fmt.Sprintf(format, args...)) }
	mgr := s.Manager()

	r.Register("help", "help", func(*flag.FlagSet) func() error {
		return func() error {
			for _, line := range r.Help() {
				out(line)
			}
			return nil
		}
	})

	r.Register("add", "add <shape>", func(fs *flag.FlagSet) func() error {
		return func() error {
			name := strings.Join(fs.Args(), " ")
			shape, ok := scene.ParseShape(name)
			if !ok {
				names := make([]string, len(scene.Shapes))
				for i, sh := range scene.Shapes {
					names[i] = sh.String()
				}
				return fmt.Errorf("add: unknown shape %q (one of: %s)", name, strings.Join(names, ", "))
			}
			s.Add(shape)
			say("added %s as mesh %d", shape, s.Index())
			return nil
		}
	})

	r.Register("import", "import <model>", func(fs *flag.FlagSet) func() error {
		return func() error {
			name := strings.Join(fs.Args(), " ")
			before := mgr.Len()
			if err := s.Import(name); err != nil {
				return fmt.Errorf("import: %w", err)
			}
			say("imported %s as meshes %d..%d", name, before, mgr.Len()-1)
			return nil
		}
	})

	r.Register("select", "select <index>", func(fs *flag.FlagSet) func() error {
		return func() error {
			if fs.NArg() != 1 {
				return errors.New("select: want one index")
			}
			i, err := index(fs.Arg(0), mgr.Len())
			if err != nil {
				return fmt.Errorf("select: %w", err)
			}
			s.Select(i)
			inst, _ := s.Selected()
			say("selected %d: %s", i, inst.Tag)
			return nil
		}
	})

	r.Register("delete", "delete [index]", func(fs *flag.FlagSet) func() error {
		return func() error {
			if fs.NArg() > 0 {
				i, err := index(fs.Arg(0), mgr.Len())
				if err != nil {
					return fmt.Errorf("delete: %w", err)
				}
				s.Select(i)
			}
			i := s.Index()
			if err := s.Delete(); err != nil {
				return fmt.Errorf("delete: %w", err)
			}
			say("deleted mesh %d, %d left", i, mgr.Len())
			return nil
		}
	})

	r.Register("dup", "dup", func(*flag.FlagSet) func() error {
		return func() error {
			if err := s.Duplicate(); err != nil {
				return fmt.Errorf("dup: %w", err)
			}
			say("duplicated as mesh %d", s.Index())
			return nil
		}
	})

	r.Register("move", "move -x X -y Y -z Z | move X Y Z", vectorCommand(s, "move", "xyz",
		func(inst *scene.MeshInstance) []float32 { return inst.Position[:] }))
	r.Register("rotate", "rotate -x DEG -y DEG -z DEG | rotate X Y Z", vectorCommand(s, "rotate", "xyz",
		func(inst *scene.MeshInstance) []float32 { return inst.Rotation[:] }))
	r.Register("scale", "scale -x X -y Y -z Z | scale X Y Z", vectorCommand(s, "scale", "xyz",
		func(inst *scene.MeshInstance) []float32 { return inst.Scale[:] }))
	r.Register("color", "color -r R -g G -b B -a A", vectorCommand(s, "color", "rgba",
		func(inst *scene.MeshInstance) []float32 { return inst.ShaderColor[:] }))
	r.Register("uv", "uv -u U -v V", vectorCommand(s, "uv", "uv",
		func(inst *scene.MeshInstance) []float32 { return inst.UVScale[:] }))

	r.Register("material", "material <tag>", func(fs *flag.FlagSet) func() error {
		return func() error {
			tag := strings.Join(fs.Args(), " ")
			if _, ok := mgr.Materials().Lookup(tag); !ok {
				return fmt.Errorf("material: unknown tag %q (one of: %s)", tag, strings.Join(mgr.Materials().Tags(), ", "))
			}
			return edit(s, "material", func(inst *scene.MeshInstance) { inst.MaterialTag = tag })
		}
	})

	r.Register("texture", "texture <tag|none>", func(fs *flag.FlagSet) func() error {
		return func() error {
			tag := strings.Join(fs.Args(), " ")
			if tag == "none" {
				tag = ""
			} else if _, ok := mgr.Textures().Slot(tag); !ok {
				return fmt.Errorf("texture: unknown tag %q (one of: %s)", tag, strings.Join(mgr.Textures().Tags(), ", "))
			}
			return edit(s, "texture", func(inst *scene.MeshInstance) { inst.TextureTag = tag })
		}
	})

	r.Register("spin", "spin [--on|--off]", func(fs *flag.FlagSet) func() error {
		on := fs.Bool("on", false, "start spinning")
		off := fs.Bool("off", false, "stop spinning")
		return func() error {
			if *on && *off {
				return errors.New("spin: --on and --off are exclusive")
			}
			return edit(s, "spin", func(inst *scene.MeshInstance) {
				switch {
				case *on:
					inst.IsRotating = true
				case *off:
					inst.IsRotating = false
				default:
					inst.IsRotating = !inst.IsRotating
				}
				say("mesh %d spinning: %t", s.Index(), inst.IsRotating)
			})
		}
	})

	r.Register("save", "save [path]", func(fs *flag.FlagSet) func() error {
		return func() error {
			path := fs.Arg(0)
			if err := s.Save(path); err != nil {
				return err
			}
			say("saved %d meshes", mgr.Len())
			return nil
		}
	})

	r.Register("load", "load [path]", func(fs *flag.FlagSet) func() error {
		return func() error {
			if err := s.Load(fs.Arg(0)); err != nil {
				return err
			}
			say("loaded %d meshes", mgr.Len())
			return nil
		}
	})

	r.Register("list", "list", func(*flag.FlagSet) func() error {
		return func() error {
			if mgr.Len() == 0 {
				out("scene is empty")
				return nil
			}
			sel := s.Index()
			for i, inst := range mgr.Meshes() {
				mark := " "
				if i == sel {
					mark = "*"
				}
				p := inst.Position
				say("%s%d: %s at (%.2f, %.2f, %.2f) material=%q texture=%q", mark, i, inst.Tag, p[0], p[1], p[2], inst.MaterialTag, inst.TextureTag)
			}
			return nil
		}
	})

	r.Register("grid", "grid --show|--hide", showHide("grid", t.Grid))
	r.Register("fps", "fps --show|--hide", showHide("fps", t.FPS))
	r.Register("mem", "mem --show|--hide", showHide("mem", t.Mem))
	r.Register("stats", "stats --show|--hide", showHide("stats", t.Stats))
}

// index parses a mesh index and checks it against a scene of n instances.
func index(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("index %q: %w", arg, err)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %d out of range [0, %d)", i, n)
	}
	return i, nil
}

func edit(s *editor.Session, name string, fn func(inst *scene.MeshInstance)) error {
	if err := s.Edit(fn); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// vectorCommand sets components of a vector field of the selected instance, one flag per
// component named by the letters of axes, or all components positionally.
func vectorCommand(s *editor.Session, name, axes string, field func(*scene.MeshInstance) []float32) Setup {
	return func(fs *flag.FlagSet) func() error {
		vals := make([]*float64, len(axes))
		for i, a := range axes {
			vals[i] = fs.Float64(string(a), 0, name+" "+string(a))
		}
		return func() error {
			set := make(map[int]float32)
			fs.Visit(func(f *flag.Flag) {
				if i := strings.Index(axes, f.Name); i >= 0 {
					set[i] = float32(*vals[i])
				}
			})
			switch {
			case fs.NArg() == len(axes) && len(set) == 0:
				for i := range axes {
					v, err := strconv.ParseFloat(fs.Arg(i), 32)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					set[i] = float32(v)
				}
			case fs.NArg() != 0 || len(set) == 0:
				return fmt.Errorf("%s: want -%s flags or %d values", name, strings.Join(strings.Split(axes, ""), " -"), len(axes))
			}
			return edit(s, name, func(inst *scene.MeshInstance) {
				dst := field(inst)
				for i, v := range set {
					dst[i] = v
				}
			})
		}
	}
}

// showHide builds an overlay switch taking exactly one of --show and --hide.
func showHide(name string, apply func(bool)) Setup {
	return func(fs *flag.FlagSet) func() error {
		show := fs.Bool("show", false, "show the "+name)
		hide := fs.Bool("hide", false, "hide the "+name)
		return func() error {
			if *show == *hide {
				return fmt.Errorf("%s: want exactly one of --show or --hide", name)
			}
			if apply != nil {
				apply(*show)
			}
			return nil
		}
	}
}
