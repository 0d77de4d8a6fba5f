package codec

type Tags map[string]any

func WriteMarkerLines(tags Tags, lines []string) {}

func WriteSeparator(tags Tags, on bool) {}

func ReadMarkerLines(tags Tags) []string { return nil }
