package gallery

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// placeholderItems is the curated dataset served when the registry is
// unreachable or empty. Callers see Fallback=true and can render it
// distinctly from real records.
func placeholderItems() []Item {
	return []Item{
		{
			ContentHash:  "0x1",
			Title:        "Digital Sunset",
			Description:  "A beautiful AI-generated sunset landscape",
			Owner:        common.HexToAddress("0x742d35Cc6634C0532925a3b8D0000000000abc01"),
			RegisteredAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			StorageRef:   "QmExample1",
			ImageURL:     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
		},
		{
			ContentHash:  "0x2",
			Title:        "Abstract Dreams",
			Description:  "Colorful abstract digital painting",
			Owner:        common.HexToAddress("0x892d35Cc6634C0532925a3b8D0000000000abc02"),
			RegisteredAt: time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
			StorageRef:   "QmExample2",
			ImageURL:     "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400&h=300&fit=crop",
		},
		{
			ContentHash:  "0x3",
			Title:        "Cyber City",
			Description:  "Futuristic cityscape with neon lights",
			Owner:        common.HexToAddress("0x342d35Cc6634C0532925a3b8D0000000000abc03"),
			RegisteredAt: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
			StorageRef:   "QmExample3",
			ImageURL:     "https://images.unsplash.com/photo-1601042879364-f3947d3f9c16?w=400&h=300&fit=crop",
		},
		{
			ContentHash:  "0x4",
			Title:        "Neural Networks",
			Description:  "Digital visualization of artificial intelligence and neural connections",
			Owner:        common.HexToAddress("0x342d35Cc6634C0532925a3b8D0000000000abc04"),
			RegisteredAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			StorageRef:   "QmExample4",
			ImageURL:     "https://plus.unsplash.com/premium_photo-1683121710572-7723bd2e235d?w=400&h=300&fit=crop",
		},
	}
}
