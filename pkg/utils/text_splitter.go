package utils

import "unicode"

// SplitText splits a long string into chunks of approximately 'chunkSize' characters
// with an 'overlap' to preserve context at boundaries. When possible the cut point
// is moved back to the nearest whitespace so article sentences are not sliced in half.
func SplitText(text string, chunkSize int, overlap int) []string {
	runes := []rune(text)
	totalLen := len(runes)

	if totalLen <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		} else {
			// Walk back up to 80 runes looking for whitespace to break on.
			cut := end
			for cut > i+chunkSize-80 && cut > i+1 {
				if unicode.IsSpace(runes[cut-1]) {
					break
				}
				cut--
			}
			if cut > i+1 && unicode.IsSpace(runes[cut-1]) {
				end = cut
			}
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
