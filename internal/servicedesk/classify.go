package servicedesk

import "strings"

// manualLoginPhrases appear together in the service desk's rejection when
// the account has never completed an interactive login. Only the Portuguese
// wording is known; other locales fall through to ErrAuthenticationFailed.
var manualLoginPhrases = []string{
	"informações de acesso incorretas.",
	"as palavras devem ser escritas na caixa correta.",
	"certifique-se de que a tecla caps lock não esteja ligada.",
}

// ClassifyFailure returns the error kind for a rejected login body:
// ErrManualLoginRequired when every manual-login phrase is present,
// ignoring case, and ErrAuthenticationFailed otherwise.
func ClassifyFailure(body string) error {
	lower := strings.ToLower(body)
	for _, phrase := range manualLoginPhrases {
		if !strings.Contains(lower, phrase) {
			return ErrAuthenticationFailed
		}
	}
	return ErrManualLoginRequired
}
