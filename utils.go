package auth

func IsNullOrEmpty(s string) bool {
	return len(s) == 0
}
