// mapimport stores map templates in the database for map_source: db.
//
// Usage:
//
//	go run ./cmd/mapimport -file maps/quake_arena.yaml
//	go run ./cmd/mapimport -list
//	go run ./cmd/mapimport -delete quake_arena
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/udisondev/arenago/internal/config"
	"github.com/udisondev/arenago/internal/data"
	"github.com/udisondev/arenago/internal/db"
)

func main() {
	cfgPath := flag.String("config", "config/arenad.yaml", "arenad config with database settings")
	file := flag.String("file", "", "template file to import")
	list := flag.Bool("list", false, "list stored templates")
	del := flag.String("delete", "", "name of a template to delete")
	flag.Parse()

	if err := run(*cfgPath, *file, *list, *del); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, file string, list bool, del string) error {
	if file == "" && !list && del == "" {
		flag.Usage()
		return fmt.Errorf("nothing to do")
	}

	cfg, err := config.LoadArena(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return err
	}
	maps := database.Maps()

	if file != "" {
		tpl, err := data.LoadTemplate(file)
		if err != nil {
			return err
		}
		if err := maps.Save(ctx, tpl); err != nil {
			return err
		}
		descs, err := tpl.DoorDescriptors()
		if err != nil {
			return err
		}
		fmt.Printf("imported %s: %d regions, %d doors\n", tpl.Name, len(tpl.Regions), len(descs))
	}

	if del != "" {
		if err := maps.Delete(ctx, del); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", del)
	}

	if list {
		infos, err := maps.List(ctx)
		if err != nil {
			return err
		}
		for _, info := range infos {
			fmt.Printf("%-24s regions: %-4d updated: %s\n",
				info.Name, info.Regions, info.UpdatedAt.Format(time.RFC3339))
		}
	}
	return nil
}
