package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/doku/internal/hint"
	"svw.info/doku/internal/infrastructure/storage"
	"svw.info/doku/internal/ports"
	"svw.info/doku/internal/solver"
	"svw.info/doku/internal/usecase"
)

// storeFlags selects and locates the puzzle store backend. Empty values fall
// back to the loaded config.
type storeFlags struct {
	Backend  string
	Database string
	Dir      string
}

func addStoreFlags(cmd *cobra.Command, f *storeFlags) {
	cmd.Flags().StringVar(&f.Backend, "store", "", "puzzle store backend (sqlite|fs)")
	cmd.Flags().StringVar(&f.Database, "db", "", "sqlite database path")
	cmd.Flags().StringVar(&f.Dir, "dir", "", "fs store directory")
}

// openStorage returns the selected store and a close function.
func openStorage(opts *RootOptions, f storeFlags) (ports.Storage, func() error, error) {
	backend := f.Backend
	if backend == "" {
		backend = opts.Config.Store
	}
	switch backend {
	case "sqlite":
		path := f.Database
		if path == "" {
			path = opts.Config.Database
		}
		st, err := storage.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	case "fs":
		dir := f.Dir
		if dir == "" {
			dir = opts.Config.Dir
		}
		return storage.NewFS(dir), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q: must be sqlite or fs", backend)
	}
}

// newService wires the solver and hinter behind the usecase layer. Commands
// never call the engine packages directly; everything goes through here.
func newService() *usecase.Service {
	return usecase.NewService(solver.NewBacktracker(), hint.NewSingles(), nil)
}

// newStoreService is newService with the selected store backend attached. The
// returned close function must be called when the command is done.
func newStoreService(opts *RootOptions, f storeFlags) (*usecase.Service, func() error, error) {
	st, closeStore, err := openStorage(opts, f)
	if err != nil {
		return nil, nil, err
	}
	svc := newService()
	svc.Storage = st
	return svc, closeStore, nil
}
