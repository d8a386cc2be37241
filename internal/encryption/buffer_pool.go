package encryption

import (
	"bufio"
	"sync"
)

const defaultBufferSize = 32 * 1024 // 32KB default buffer size

// readerPool recycles buffered readers between files so small-block ciphers
// do not hit the filesystem once per block.
//
//nolint:gochecknoglobals
var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, defaultBufferSize)
	},
}
