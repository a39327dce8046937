package cmd

import (
	"log/slog"

	"github.com/Alia5/sigexport/signature"
)

func loadProjects(logger *slog.Logger, paths []string) (*signature.Set, error) {
	set, err := signature.LoadAll(paths...)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded signatures", "files", len(paths), "count", set.Len())
	return set, nil
}
