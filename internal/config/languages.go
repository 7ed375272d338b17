package config

// Language represents a supported transcription language
type Language struct {
	Code string // ISO 639-1 code (e.g., "en", "es", "zh")
	Name string // English name (e.g., "English", "Spanish")
}

// Auto represents auto-detection - used when user doesn't specify a language
var Auto = Language{Code: "", Name: "Auto-detect"}

// languages is the master list of transcription languages, derived from
// the Whisper supported set.
var languages = []Language{
	{Code: "af", Name: "Afrikaans"},
	{Code: "ar", Name: "Arabic"},
	{Code: "az", Name: "Azerbaijani"},
	{Code: "be", Name: "Belarusian"},
	{Code: "bg", Name: "Bulgarian"},
	{Code: "bs", Name: "Bosnian"},
	{Code: "ca", Name: "Catalan"},
	{Code: "cs", Name: "Czech"},
	{Code: "cy", Name: "Welsh"},
	{Code: "da", Name: "Danish"},
	{Code: "de", Name: "German"},
	{Code: "el", Name: "Greek"},
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "et", Name: "Estonian"},
	{Code: "fa", Name: "Persian"},
	{Code: "fi", Name: "Finnish"},
	{Code: "fr", Name: "French"},
	{Code: "gl", Name: "Galician"},
	{Code: "he", Name: "Hebrew"},
	{Code: "hi", Name: "Hindi"},
	{Code: "hr", Name: "Croatian"},
	{Code: "hu", Name: "Hungarian"},
	{Code: "hy", Name: "Armenian"},
	{Code: "id", Name: "Indonesian"},
	{Code: "is", Name: "Icelandic"},
	{Code: "it", Name: "Italian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "kk", Name: "Kazakh"},
	{Code: "kn", Name: "Kannada"},
	{Code: "ko", Name: "Korean"},
	{Code: "lt", Name: "Lithuanian"},
	{Code: "lv", Name: "Latvian"},
	{Code: "mi", Name: "Maori"},
	{Code: "mk", Name: "Macedonian"},
	{Code: "mr", Name: "Marathi"},
	{Code: "ms", Name: "Malay"},
	{Code: "ne", Name: "Nepali"},
	{Code: "nl", Name: "Dutch"},
	{Code: "no", Name: "Norwegian"},
	{Code: "pl", Name: "Polish"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ro", Name: "Romanian"},
	{Code: "ru", Name: "Russian"},
	{Code: "sk", Name: "Slovak"},
	{Code: "sl", Name: "Slovenian"},
	{Code: "sr", Name: "Serbian"},
	{Code: "sv", Name: "Swedish"},
	{Code: "sw", Name: "Swahili"},
	{Code: "ta", Name: "Tamil"},
	{Code: "th", Name: "Thai"},
	{Code: "tl", Name: "Tagalog"},
	{Code: "tr", Name: "Turkish"},
	{Code: "uk", Name: "Ukrainian"},
	{Code: "ur", Name: "Urdu"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "zh", Name: "Chinese"},
}

var codeIndex map[string]Language

func init() {
	codeIndex = make(map[string]Language, len(languages)+1)
	codeIndex[""] = Auto // auto-detect is valid
	for _, lang := range languages {
		codeIndex[lang.Code] = lang
	}
}

// LanguageFromCode returns the Language for the given code.
// Returns Auto if code is not found.
func LanguageFromCode(code string) Language {
	if lang, ok := codeIndex[code]; ok {
		return lang
	}
	return Auto
}

// Languages returns all supported languages (excluding Auto)
func Languages() []Language {
	result := make([]Language, len(languages))
	copy(result, languages)
	return result
}

// IsValidLanguageCode returns true if the code is recognized (including empty for auto)
func IsValidLanguageCode(code string) bool {
	_, ok := codeIndex[code]
	return ok
}
