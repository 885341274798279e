package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/wippyai/msdoc"
)

// streamNames are the file names an OLE2 extractor gives the streams.
var streamNames = []string{"WordDocument", "0Table", "1Table", "Data"}

// streamInfo describes one stream file found in a dump directory.
type streamInfo struct {
	Name       string
	Path       string
	Size       int
	Compressed bool
	Digest     string
}

// loadStreams reads the streams of one document from dir. Each stream may
// be stored plain or xz compressed with an .xz suffix. Missing streams are
// left nil; a missing WordDocument is reported by msdoc.Open.
func loadStreams(dir string, limit int64) (msdoc.Streams, []streamInfo, error) {
	var s msdoc.Streams
	var infos []streamInfo
	for _, name := range streamNames {
		buf, info, err := readStream(dir, name, limit)
		if err != nil {
			return msdoc.Streams{}, nil, err
		}
		if info == nil {
			continue
		}
		infos = append(infos, *info)
		switch name {
		case "WordDocument":
			s.WordDocument = buf
		case "0Table":
			s.Table0 = buf
		case "1Table":
			s.Table1 = buf
		case "Data":
			s.Data = buf
		}
	}
	return s, infos, nil
}

func readStream(dir, name string, limit int64) ([]byte, *streamInfo, error) {
	path := filepath.Join(dir, name)
	compressed := false
	buf, err := readLimited(path, false, limit)
	if os.IsNotExist(err) {
		path += ".xz"
		compressed = true
		buf, err = readLimited(path, true, limit)
	}
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", name, err)
	}
	digest := blake3.Sum256(buf)
	return buf, &streamInfo{
		Name:       name,
		Path:       path,
		Size:       len(buf),
		Compressed: compressed,
		Digest:     hex.EncodeToString(digest[:]),
	}, nil
}

// readLimited reads path, decompressing it when xzCompressed is set. At most limit+1
// bytes are read so an oversized stream is still rejected by msdoc.Open
// without loading all of it. A limit of zero or less reads everything.
func readLimited(path string, xzCompressed bool, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if xzCompressed {
		zr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz: %w", err)
		}
		r = zr
	}
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	var out bytes.Buffer
	if _, err := io.Copy(&out, r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
