package persister

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// Copy migrates the full task set from one target to another, translating
// between backend kinds when they differ. Policy comes from the passed
// config, never from ambient state: ForceCopy permits overwriting a
// destination that already has tasks, and DropAfterCopy removes the
// source after a successful copy. The copy is all-or-nothing from the
// caller's point of view.
func Copy(src, dst string, cfg types.Config) error {
	if src == dst {
		return types.ErrSameTarget
	}

	source, err := Resolve(src)
	if err != nil {
		return fmt.Errorf("resolving source %q: %w", src, err)
	}

	srcCount, err := source.Count()
	if err != nil {
		return fmt.Errorf("probing source %q: %w", src, err)
	}
	if srcCount == 0 {
		return fmt.Errorf("%q: %w", src, types.ErrSourceMissing)
	}

	dest, err := Resolve(dst)
	if err != nil {
		return fmt.Errorf("resolving destination %q: %w", dst, err)
	}
	if !dest.Exists() {
		if err := dest.Create(); err != nil {
			return fmt.Errorf("creating destination %q: %w", dst, err)
		}
	}

	if !cfg.ForceCopy {
		dstCount, err := dest.Count()
		if err != nil {
			return fmt.Errorf("probing destination %q: %w", dst, err)
		}
		if dstCount > 0 {
			return fmt.Errorf("%q: %w; set force_copy to overwrite", dst, types.ErrTargetOccupied)
		}
	}

	todo, err := types.Load(source)
	if err != nil {
		return fmt.Errorf("loading source %q: %w", src, err)
	}
	if err := dest.Replace(todo); err != nil {
		return fmt.Errorf("writing destination %q: %w", dst, err)
	}

	if cfg.DropAfterCopy {
		if err := source.Remove(); err != nil {
			return fmt.Errorf("dropping source %q after copy: %w", src, err)
		}
		log.Info("dropped source after copy", "source", src)
	}

	return nil
}
