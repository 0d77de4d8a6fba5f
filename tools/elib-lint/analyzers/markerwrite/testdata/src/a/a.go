package a

import "example.com/elib/domain/codec"

func bad(tags codec.Tags) {
	codec.WriteMarkerLines(tags, []string{"Sharpness V"}) // want "codec.WriteMarkerLines called outside the reconciler"
	codec.WriteSeparator(tags, true)                      // want "codec.WriteSeparator called outside the reconciler"
}

func good(tags codec.Tags) []string {
	return codec.ReadMarkerLines(tags)
}
