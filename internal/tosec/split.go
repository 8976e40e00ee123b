package tosec

import "strings"

// Split separates a raw name into the title segment, the flags region and the
// dump-flags region. It accepts any input.
//
// The title ends at the first '(' or, when a '[' comes earlier, at that '['.
// The flags region runs from the first '(' up to the first '['. The dump
// region runs from the first '[' to the end of the name.
func Split(raw string) (title, flags, dump string) {
	open := strings.IndexByte(raw, '(')
	bracket := strings.IndexByte(raw, '[')

	end := len(raw)
	if bracket >= 0 {
		end = bracket
		dump = raw[bracket:]
	}

	if open < 0 || (bracket >= 0 && bracket < open) {
		return raw[:end], "", dump
	}
	return raw[:open], raw[open:end], dump
}

// tokenize cuts region after every closer, keeping the closer on the chunk
// it terminates. Blank chunks are dropped and an unterminated tail is kept as
// its own chunk.
func tokenize(region string, closer byte) []string {
	var chunks []string
	for region != "" {
		var chunk string
		if i := strings.IndexByte(region, closer); i >= 0 {
			chunk, region = region[:i+1], region[i+1:]
		} else {
			chunk, region = region, ""
		}
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// cutOpener splits a chunk into the bare text before opener and the
// delimited token starting at opener.
func cutOpener(chunk string, opener byte) (bare, token string) {
	i := strings.IndexByte(chunk, opener)
	if i < 0 {
		return squash(chunk), ""
	}
	return squash(chunk[:i]), chunk[i:]
}

// unwrap strips one leading opener and one trailing closer.
func unwrap(token string, opener, closer byte) string {
	if len(token) > 0 && token[0] == opener {
		token = token[1:]
	}
	if len(token) > 0 && token[len(token)-1] == closer {
		token = token[:len(token)-1]
	}
	return token
}

// squash trims s and collapses inner runs of whitespace.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
