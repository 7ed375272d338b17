// Package locale holds the user-facing message catalog. Messages printed
// during a transcribe run are looked up here so the CLI can speak English
// or Portuguese; log lines stay in English.
package locale

import "fmt"

var catalog = map[string]map[string]string{
	"en": {
		"probing":            "Analyzing audio file...",
		"segmenting":         "Splitting audio into %d-minute segments...",
		"transcribing":       "Transcribing %d segments...",
		"segment_done":       "Segment %d/%d transcribed",
		"stitching":          "Assembling transcript...",
		"diarizing":          "Detecting speakers...",
		"exporting":          "Writing %s...",
		"transcription_done": "Transcription complete!",
		"done_with_gaps":     "Transcription complete, but %d segment(s) failed; gaps are marked in the transcript.",
		"diarization_done":   "Diarization complete!",
		"failed":             "Transcription failed: %v",
		"wrote_file":         "Wrote %s",
		"duration":           "Duration: %s",
		"rename_applied":     "Speaker names applied.",
	},
	"pt": {
		"probing":            "Analisando o arquivo de áudio...",
		"segmenting":         "Dividindo o áudio em segmentos de %d minutos...",
		"transcribing":       "Transcrevendo %d segmentos...",
		"segment_done":       "Segmento %d/%d transcrito",
		"stitching":          "Montando a transcrição...",
		"diarizing":          "Detectando falantes...",
		"exporting":          "Gerando %s...",
		"transcription_done": "Transcrição concluída!",
		"done_with_gaps":     "Transcrição concluída, mas %d segmento(s) falharam; as lacunas estão marcadas na transcrição.",
		"diarization_done":   "Diarização concluída!",
		"failed":             "Falha na transcrição: %v",
		"wrote_file":         "Arquivo gravado: %s",
		"duration":           "Duração: %s",
		"rename_applied":     "Nomes de falantes aplicados.",
	},
}

// T returns the message for key in the given locale, falling back to
// English, then to the key itself.
func T(locale, key string) string {
	if msgs, ok := catalog[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog["en"][key]; ok {
		return msg
	}
	return key
}

// Tf is T with fmt.Sprintf applied.
func Tf(locale, key string, args ...any) string {
	return fmt.Sprintf(T(locale, key), args...)
}

// Supported lists the locales the catalog carries.
func Supported() []string {
	return []string{"en", "pt"}
}
