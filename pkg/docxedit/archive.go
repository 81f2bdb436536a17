package docxedit

import (
	"archive/zip"
	"compress/flate"
	"fmt"
	"io"
	"strings"
	"time"
)

// BodyPartName is the archive entry holding the document body
const BodyPartName = "word/document.xml"

// isBodyPart also accepts the leading-slash spelling some writers produce
func isBodyPart(name string) bool {
	return strings.TrimPrefix(name, "/") == BodyPartName
}

// archiveSnapshot is what Open keeps from the container
type archiveSnapshot struct {
	body  []byte
	parts []string
}

// readArchive reads the body part and the entry list of the archive at path.
// The archive is closed before returning.
func readArchive(path string, maxBody int64) (*archiveSnapshot, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, NewDocumentError("open", path, ErrArchiveOpen, err)
	}
	defer r.Close()

	snap := &archiveSnapshot{parts: make([]string, 0, len(r.File))}
	var body *zip.File
	for _, file := range r.File {
		snap.parts = append(snap.parts, file.Name)
		if body == nil && isBodyPart(file.Name) {
			body = file
		}
	}
	if body == nil {
		return nil, NewDocumentError("open", path, ErrPartNotFound, fmt.Errorf("missing %s", BodyPartName))
	}

	if maxBody > 0 && body.UncompressedSize64 > uint64(maxBody) {
		return nil, NewDocumentError("open", path, ErrMalformedDocument,
			fmt.Errorf("%s is %d bytes, limit is %d", body.Name, body.UncompressedSize64, maxBody))
	}

	rc, err := body.Open()
	if err != nil {
		return nil, NewDocumentError("open", path, ErrArchiveOpen, fmt.Errorf("failed to open %s: %w", body.Name, err))
	}
	defer rc.Close()

	var src io.Reader = rc
	if maxBody > 0 {
		// The header size is not trusted; read one byte past the limit.
		src = io.LimitReader(rc, maxBody+1)
	}
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, NewDocumentError("open", path, ErrArchiveOpen, fmt.Errorf("failed to read %s: %w", body.Name, err))
	}
	if maxBody > 0 && int64(len(content)) > maxBody {
		return nil, NewDocumentError("open", path, ErrMalformedDocument,
			fmt.Errorf("%s exceeds limit of %d bytes", body.Name, maxBody))
	}

	snap.body = content
	return snap, nil
}

// archiveWriter builds the replacement archive
type archiveWriter struct {
	zw   *zip.Writer
	path string
}

func newArchiveWriter(w io.Writer, path string, level int) *archiveWriter {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})
	return &archiveWriter{zw: zw, path: path}
}

// writeBody stores the serialized body under name
func (aw *archiveWriter) writeBody(name string, body []byte) error {
	fw, err := aw.zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: time.Now(),
	})
	if err != nil {
		return NewDocumentError("save", aw.path, ErrWrite, fmt.Errorf("failed to create %s: %w", name, err))
	}
	if _, err := fw.Write(body); err != nil {
		return NewDocumentError("save", aw.path, ErrWrite, fmt.Errorf("failed to write %s: %w", name, err))
	}
	return nil
}

// copyEntry copies file's compressed bytes and header unchanged
func (aw *archiveWriter) copyEntry(file *zip.File) error {
	raw, err := file.OpenRaw()
	if err != nil {
		return NewDocumentError("save", aw.path, ErrPartNotFound, fmt.Errorf("failed to open %s: %w", file.Name, err))
	}

	header := file.FileHeader
	fw, err := aw.zw.CreateRaw(&header)
	if err != nil {
		return NewDocumentError("save", aw.path, ErrWrite, fmt.Errorf("failed to create %s: %w", file.Name, err))
	}
	if _, err := io.Copy(fw, raw); err != nil {
		return NewDocumentError("save", aw.path, ErrWrite, fmt.Errorf("failed to copy %s: %w", file.Name, err))
	}
	return nil
}

func (aw *archiveWriter) close() error {
	if err := aw.zw.Close(); err != nil {
		return NewDocumentError("save", aw.path, ErrWrite, fmt.Errorf("failed to finish archive: %w", err))
	}
	return nil
}

// rewriteArchive writes body in place of the body part of the archive at
// source and copies every other entry, in order, into w.
func rewriteArchive(w io.Writer, source, target string, body []byte, level int) error {
	src, err := zip.OpenReader(source)
	if err != nil {
		return NewDocumentError("save", source, ErrArchiveOpen, err)
	}
	defer src.Close()

	aw := newArchiveWriter(w, target, level)
	wroteBody := false
	for _, file := range src.File {
		if isBodyPart(file.Name) {
			if wroteBody {
				continue
			}
			if err := aw.writeBody(file.Name, body); err != nil {
				return err
			}
			wroteBody = true
			continue
		}
		if err := aw.copyEntry(file); err != nil {
			return err
		}
	}
	if !wroteBody {
		if err := aw.writeBody(BodyPartName, body); err != nil {
			return err
		}
	}
	return aw.close()
}
