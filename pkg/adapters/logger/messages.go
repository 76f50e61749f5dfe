package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Recording %d fps while running: %s": "%d fps で録画中、コマンド実行: %s",
		"Recording %d fps for %.1f seconds":  "%d fps で %.1f 秒間録画中",
		"Recording %d fps until interrupted": "%d fps で録画中 (中断されるまで)",
		"Captured %d frames":                 "%d フレームをキャプチャしました",
		"Capturing in %.0f seconds":          "%.0f 秒後にキャプチャします",
		"Captured the image":                 "画像をキャプチャしました",
		"Editing %d frames":                  "%d フレームを編集中",
		"Output saved to %s (%d bytes)":      "出力を %s に保存しました (%d バイト)",
		"Interrupted, shutting down...":      "中断されました。シャットダウン中...",

		// Record component (debug)
		"Recording stopped after %d frames":      "%d フレームで録画を停止しました",
		"Recording interrupted after %d frames":  "%d フレームで録画が中断されました",
		"Stop condition reached after %d frames": "%d フレームで停止条件に達しました",

		// Warnings
		"Failed to finish the recording: %s": "録画の終了に失敗しました: %s",

		// Errors
		"Command failed: %s":         "コマンドが失敗しました: %s",
		"Failed to record: %s":       "録画に失敗しました: %s",
		"Failed to capture: %s":      "キャプチャに失敗しました: %s",
		"Failed to encode: %s":       "エンコードに失敗しました: %s",
		"Failed to write output: %s": "出力の書き込みに失敗しました: %s",
		"Failed to decode %s: %s":    "%s のデコードに失敗しました: %s",
	})
}
