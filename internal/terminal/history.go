package terminal

// History keeps the most recent submitted lines for Up/Down recall.
type History struct {
	lines []string
	limit int
	// cursor indexes lines; len(lines) means "past the newest", i.e. an empty prompt.
	cursor int
}

// NewHistory returns a history keeping at most limit lines.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1
	}
	return &History{limit: limit}
}

// Push records line, dropping the oldest entry over the limit. Repeating the newest
// line is not recorded twice. The cursor returns past the newest line.
func (h *History) Push(line string) {
	if n := len(h.lines); n == 0 || h.lines[n-1] != line {
		h.lines = append(h.lines, line)
		if len(h.lines) > h.limit {
			h.lines = h.lines[len(h.lines)-h.limit:]
		}
	}
	h.cursor = len(h.lines)
}

// Prev moves to the previous (older) line. ok is false when there is none.
func (h *History) Prev() (line string, ok bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.lines[h.cursor], true
}

// Next moves to the next (newer) line. Past the newest it returns "" and false.
func (h *History) Next() (line string, ok bool) {
	if h.cursor >= len(h.lines)-1 {
		h.cursor = len(h.lines)
		return "", false
	}
	h.cursor++
	return h.lines[h.cursor], true
}

// Len returns the number of stored lines.
func (h *History) Len() int { return len(h.lines) }
