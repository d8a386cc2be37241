package encryption

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/absfs/absfs"

	"github.com/idelchi/gofish/internal/fileutil"
)

// Engine rewrites files in place with a block cipher.
type Engine struct {
	// fs is the filesystem the files live on
	fs absfs.FileSystem

	// cipher is shared read-only by every caller of Transform
	cipher *Cipher

	// direction selects encryption or decryption
	direction Direction

	// preserveTimestamps restores the modification time after rewriting
	preserveTimestamps bool
}

// NewEngine creates an Engine that applies cipher in the given direction.
func NewEngine(fsys absfs.FileSystem, cipher *Cipher, direction Direction, preserveTimestamps bool) *Engine {
	return &Engine{
		fs:                 fsys,
		cipher:             cipher,
		direction:          direction,
		preserveTimestamps: preserveTimestamps,
	}
}

// Direction reports whether the engine encrypts or decrypts.
func (e *Engine) Direction() Direction {
	return e.direction
}

// Transform reads path block by block, transforms every block and rewrites the file.
// The whole output is held in memory until the file is rewritten.
// A failure after the file was truncated leaves it partially written.
// It returns the size of the rewritten file.
func (e *Engine) Transform(path string) (int64, error) {
	info, err := e.fs.Stat(path)
	if err != nil {
		return 0, ioError("stat", path, err)
	}

	output, err := e.readBlocks(path, info.Size())
	if err != nil {
		return 0, err
	}

	if err := e.rewrite(path, trimFinalBlock(output, e.cipher.BlockSize())); err != nil {
		return 0, err
	}

	size, err := fileutil.FinalizeOutput(e.fs, path, e.preserveTimestamps, info.ModTime())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return size, nil
}

// readBlocks returns the transformed blocks of path, concatenated in file order.
// A short final read is zero-padded to a full block.
func (e *Engine) readBlocks(path string, sizeHint int64) ([]byte, error) {
	file, err := e.fs.Open(path)
	if err != nil {
		return nil, ioError("opening", path, err)
	}
	defer file.Close()

	reader, ok := readerPool.Get().(*bufio.Reader)
	if !ok {
		reader = bufio.NewReaderSize(nil, defaultBufferSize)
	}

	reader.Reset(file)

	defer func() {
		reader.Reset(nil)
		readerPool.Put(reader)
	}()

	width := e.cipher.BlockSize()
	chunk := make([]byte, width)

	blocks := (sizeHint + int64(width) - 1) / int64(width)
	output := make([]byte, 0, blocks*int64(width))

	for {
		clear(chunk)

		_, err := io.ReadFull(reader, chunk)

		final := false

		switch {
		case errors.Is(err, io.EOF):
			return output, nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			final = true
		case err != nil:
			return nil, ioError("reading", path, err)
		}

		start := len(output)
		output = append(output, chunk...)

		if err := e.cipher.Apply(e.direction, output[start:], chunk); err != nil {
			return nil, fmt.Errorf("block at offset %d of %q: %w", start, path, err)
		}

		if final {
			return output, nil
		}
	}
}

// rewrite truncates path and writes data to it.
func (e *Engine) rewrite(path string, data []byte) error {
	file, err := e.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return ioError("opening for write", path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close() //nolint:errcheck,gosec // the write error is the one worth reporting

		return ioError("writing", path, err)
	}

	if err := file.Close(); err != nil {
		return ioError("closing", path, err)
	}

	return nil
}

func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %q: %w", ErrIO, op, path, err)
}
