package various

import (
	"runtime"
	"sync"
)

// KickOffRowWorkers splits the row range [0, totalRows) into contiguous
// chunks and runs fn on each chunk in its own goroutine. Each worker owns
// its rows exclusively, so no locking is needed on the output grid.
func KickOffRowWorkers(totalRows int, fn func(startRow, endRow int)) {
	if totalRows <= 0 {
		return
	}
	numWorkers := runtime.NumCPU()
	if numWorkers > totalRows {
		numWorkers = totalRows
	}

	var wg sync.WaitGroup
	var chunkStart int
	chunkSize := (totalRows / numWorkers) + 1
	for i := 0; i < numWorkers; i++ {
		curChunk := chunkSize
		if rem := totalRows - chunkStart; rem < curChunk {
			curChunk = rem
		}
		if curChunk <= 0 {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			fn(start, end)
			wg.Done()
		}(chunkStart, chunkStart+curChunk)
		chunkStart += curChunk
	}
	wg.Wait()
}
