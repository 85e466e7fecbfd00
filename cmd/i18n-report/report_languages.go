package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/languages"
)

func newLanguagesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "The supported languages and the switcher order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reportLanguages()
		},
	}
}

type languageInfo struct {
	languages.Language
	Base bool   `json:"base"`
	File string `json:"file"`
	Next string `json:"next"`
}

func (a *app) reportLanguages() error {
	var infos []languageInfo
	for _, l := range languages.Supported() {
		infos = append(infos, languageInfo{
			Language: l,
			Base:     l.Code == a.base(),
			File:     a.rel(a.localePath(l.Code)),
			Next:     languages.Next(l.Code),
		})
	}

	if a.format == formatJSON {
		return outputJSON(a.out, infos)
	}

	for _, info := range infos {
		marker := " "
		if info.Base {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s %-6s %-8s %s -> %s\n", marker, info.Flag, info.Code, info.Name, info.File, info.Next)
	}
	return nil
}
