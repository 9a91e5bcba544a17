/*
 * Copyright 2024 The Satire Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command satire builds a hyperlinked HTML cross-reference of a source tree.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aptakhin/satire/config"
	"github.com/aptakhin/satire/indexer"
)

var args struct {
	configFile string
	outDir     string
	template   string
}

var cmdRoot = &cobra.Command{
	Use:   "satire <root>",
	Short: "index a source tree into cross-referenced HTML pages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, positional []string) error {
		cmd.SilenceUsage = true

		cfg := config.Default()
		if args.configFile != "" {
			loaded, err := config.Load(args.configFile)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if args.outDir != "" {
			cfg.OutDir = args.outDir
		}
		if args.template != "" {
			cfg.Template = args.template
		}

		ix, err := indexer.New(cfg)
		if err != nil {
			return err
		}
		return ix.Run(positional[0])
	},
}

func main() {
	log.SetFlags(log.Lshortfile | log.Ltime)
	cmdRoot.Flags().StringVar(&args.configFile, "config", "", "ini configuration file")
	cmdRoot.Flags().StringVar(&args.outDir, "out", "", "output directory (overrides configuration)")
	cmdRoot.Flags().StringVar(&args.template, "template", "", "page template file (overrides configuration)")
	if err := cmdRoot.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
