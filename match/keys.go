package match

import "strconv"

// resolveKeys maps phase indices to caller-supplied labels. With no keys,
// phases are labeled by their contiguous integer index.
func resolveKeys(numPhases int, keys []string) ([]string, error) {
	if len(keys) == 0 {
		out := make([]string, numPhases)
		for i := range out {
			out[i] = strconv.Itoa(i)
		}
		return out, nil
	}
	if len(keys) != numPhases {
		return nil, &ErrKeysLength{Expected: numPhases, Actual: len(keys)}
	}
	out := make([]string, len(keys))
	copy(out, keys)
	return out, nil
}
