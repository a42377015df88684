package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"

	"github.com/go-theft-craft/schematic/cmd/codegen/internal/generator"
)

func main() {
	schemeDir := flag.String("scheme", "", "path to the scheme directory (e.g. ./scheme/pc-1.8); empty downloads it")
	base := flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "minecraft-data repository used when -scheme is empty")
	ver := flag.String("version", "1.8", "minecraft-data pc version used when -scheme is empty")
	out := flag.String("out", "./internal/catalog/blocks_gen.go", "output file")
	pkg := flag.String("pkg", "catalog", "package name of the generated file")

	flag.Parse()

	if err := run(*schemeDir, *base, *ver, *out, *pkg); err != nil {
		log.Fatalf("codegen failed: %v", err)
	}
	fmt.Println("codegen: done")
}

func run(schemeDir, base, ver, out, pkg string) error {
	if schemeDir == "" {
		tmp, err := os.MkdirTemp("", "scheme-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmp)

		schemeDir = filepath.Join(tmp, "pc-"+ver)
		url := fmt.Sprintf("git::%s//data/pc/%s", base, ver)
		log.Default().Printf("start downloading scheme %s", url)
		client := &get.Client{
			Ctx:  context.Background(),
			Src:  url,
			Dst:  schemeDir,
			Mode: get.ClientModeDir,
		}
		if err := client.Get(); err != nil {
			return fmt.Errorf("download scheme: %w", err)
		}
	}

	fmt.Printf("codegen: generating %s from %s\n", out, schemeDir)
	return generator.Run(generator.Config{
		SchemeDir: schemeDir,
		OutFile:   out,
		Package:   pkg,
	})
}
