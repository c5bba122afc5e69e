package handlers

// User-facing error strings, keyed by locale. The service's primary audience
// is Japanese; "en" covers everyone else.

func msgMissingImage(locale string) string {
	if locale == "ja" {
		return "画像が見つかりませんでした。"
	}
	return "No image was provided."
}

func msgInvalidPayload(locale string) string {
	if locale == "ja" {
		return "リクエストの形式が正しくありません。"
	}
	return "The request payload is malformed."
}

func msgNotFound(locale string) string {
	if locale == "ja" {
		return "対象が見つかりませんでした。"
	}
	return "The requested item was not found."
}

func msgEmptyBody(locale string) string {
	if locale == "ja" {
		return "設定内容が空です。"
	}
	return "The settings payload is empty."
}

func msgInternal(locale string) string {
	if locale == "ja" {
		return "内部エラーが発生しました。"
	}
	return "An internal error occurred."
}
