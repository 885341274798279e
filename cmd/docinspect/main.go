// Command docinspect prints and browses the structures of a binary Word
// document whose streams were extracted to a directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/wippyai/msdoc"
	"github.com/wippyai/msdoc/config"
	"github.com/wippyai/msdoc/piece"
)

// Globals are flags shared by every command.
type Globals struct {
	Config string `short:"c" help:"TOML configuration file" type:"existingfile"`
}

// CLI defines the command-line interface for docinspect.
var CLI struct {
	Globals

	Fib    FibCmd    `cmd:"" help:"Print the file information block"`
	Dop    DopCmd    `cmd:"" help:"Print the document properties"`
	Text   TextCmd   `cmd:"" help:"Print the text of one story"`
	Pieces PiecesCmd `cmd:"" help:"Print the piece table"`
	Browse BrowseCmd `cmd:"" help:"Browse stories in a terminal UI"`
}

// session is one opened document plus the settings it was opened with.
type session struct {
	cfg     config.Config
	log     *zap.Logger
	doc     *msdoc.Document
	streams []streamInfo
}

func (g *Globals) open(dir string) (*session, error) {
	cfg := config.Default()
	if g.Config != "" {
		var err error
		if cfg, err = config.Load(g.Config); err != nil {
			return nil, err
		}
	}
	log, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}
	streams, infos, err := loadStreams(dir, cfg.MaxStreamSize)
	if err != nil {
		return nil, err
	}
	doc, err := msdoc.Open(streams, cfg.OpenOptions(log)...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dir, err)
	}
	log.Debug("streams loaded", zap.String("dir", dir), zap.Int("streams", len(infos)))
	return &session{cfg: cfg, log: log, doc: doc, streams: infos}, nil
}

type FibCmd struct {
	Dir string `arg:"" help:"Directory holding the extracted streams" type:"existingdir"`
}

func (c *FibCmd) Run(g *Globals) error {
	s, err := g.open(c.Dir)
	if err != nil {
		return err
	}
	defer s.log.Sync()
	writeStreams(os.Stdout, s.streams)
	fmt.Println()
	writeFib(os.Stdout, s.doc)
	return nil
}

type DopCmd struct {
	Dir string `arg:"" help:"Directory holding the extracted streams" type:"existingdir"`
}

func (c *DopCmd) Run(g *Globals) error {
	s, err := g.open(c.Dir)
	if err != nil {
		return err
	}
	defer s.log.Sync()
	writeDop(os.Stdout, s.doc)
	return nil
}

type TextCmd struct {
	Dir string `arg:"" help:"Directory holding the extracted streams" type:"existingdir"`
	Sub string `help:"Story to print" default:"main" enum:"main,footnote,header,annotation,endnote,textbox,header-textbox"`
	Raw bool   `help:"Print the text without marking control characters or truncating"`
}

func (c *TextCmd) Run(g *Globals) error {
	s, err := g.open(c.Dir)
	if err != nil {
		return err
	}
	defer s.log.Sync()
	return writeText(os.Stdout, s, c.Sub, c.Raw)
}

func writeText(w io.Writer, s *session, sub string, raw bool) error {
	sd, ok := piece.ParseSubDocument(sub)
	if !ok {
		return fmt.Errorf("unknown story %q", sub)
	}
	text, err := s.doc.Text(sd)
	if err != nil {
		return err
	}
	if raw {
		_, err = io.WriteString(w, text)
		return err
	}
	_, err = fmt.Fprintln(w, preview(text, s.cfg.Inspect.PreviewChars))
	return err
}

type PiecesCmd struct {
	Dir string `arg:"" help:"Directory holding the extracted streams" type:"existingdir"`
}

func (c *PiecesCmd) Run(g *Globals) error {
	s, err := g.open(c.Dir)
	if err != nil {
		return err
	}
	defer s.log.Sync()
	writePieces(os.Stdout, s.doc)
	return nil
}

type BrowseCmd struct {
	Dir string `arg:"" help:"Directory holding the extracted streams" type:"existingdir"`
}

func (c *BrowseCmd) Run(g *Globals) error {
	s, err := g.open(c.Dir)
	if err != nil {
		return err
	}
	defer s.log.Sync()
	return runBrowse(s)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("docinspect"),
		kong.Description("Inspect the structures of a binary Word document"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&CLI.Globals)
	ctx.FatalIfErrorf(err)
}
