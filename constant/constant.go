package constant

const (
	SCALE           = 4
	PALETTE_ENTRIES = 256
	PALETTE_BYTES   = PALETTE_ENTRIES * 3
	TARGET_FPS      = 60
	DEFAULT_TITLE   = "palwin"
)
