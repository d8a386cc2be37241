package encryption

// trailingZeros counts the run of zero bytes at the end of block.
func trailingZeros(block []byte) int {
	count := 0

	for i := len(block) - 1; i >= 0 && block[i] == 0; i-- {
		count++
	}

	return count
}

// trimFinalBlock drops the trailing zero run of the last width-sized block of data.
// Zero bytes in earlier blocks are never touched.
func trimFinalBlock(data []byte, width int) []byte {
	if len(data) < width || width <= 0 {
		return data
	}

	return data[:len(data)-trailingZeros(data[len(data)-width:])]
}
