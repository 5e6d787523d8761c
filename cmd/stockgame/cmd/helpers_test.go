package cmd

import (
	"path/filepath"

	"github.com/rustyeddy/stockgame/config"
)

func journalConfig(kind, dir string) config.JournalConfig {
	return config.JournalConfig{
		Type:       kind,
		FillsFile:  filepath.Join(dir, "fills.csv"),
		EquityFile: filepath.Join(dir, "equity.csv"),
		DBPath:     filepath.Join(dir, "journal.sqlite"),
	}
}
