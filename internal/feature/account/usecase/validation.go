package usecase

import (
	"net/mail"
	"unicode"
)

// minPasswordLength はパスワードの最低文字数を定義します。
const minPasswordLength = 6

// isPasswordStrong はパスワードが強度要件（6文字以上、英字と数字を各1文字以上）を
// 満たしているかチェックします。
func isPasswordStrong(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// isEmailValid はメールアドレスが構文的に妥当かチェックします。
// 表示名付きの形式（"Name <a@b>"）は受け付けません。
func isEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
