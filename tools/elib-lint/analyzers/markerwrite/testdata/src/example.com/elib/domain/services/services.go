package services

import "example.com/elib/domain/codec"

func reconcile(tags codec.Tags, lines []string) {
	codec.WriteMarkerLines(tags, lines)
	codec.WriteSeparator(tags, len(lines) > 0)
}
