package news

// Fixed user-facing copy.
const (
	EmptyListMessage  = "No news checked yet. Be the first to check some news!"
	ListErrorMessage  = "⚠️ Error loading news. Please refresh the page."
	SubmitFailedAlert = "❌ Failed to check news. Please make sure the server is running and try again."
)

// Verdict is the presentation of a fake/real classification.
type Verdict struct {
	Fake     bool
	Icon     string
	Headline string
	Detail   string
	Badge    string
	Class    string // CSS class and style key: "fake" or "real"
}

var (
	fakeVerdict = Verdict{
		Fake:     true,
		Icon:     "⚠️",
		Headline: "FAKE NEWS DETECTED!",
		Detail:   "This content contains suspicious patterns commonly found in fake news.",
		Badge:    "❌ Fake",
		Class:    "fake",
	}
	realVerdict = Verdict{
		Fake:     false,
		Icon:     "✅",
		Headline: "APPEARS TO BE REAL NEWS",
		Detail:   "No suspicious patterns detected in this content.",
		Badge:    "✅ Real",
		Class:    "real",
	}
)

// VerdictFor returns the verdict copy for a fake flag.
func VerdictFor(fake bool) Verdict {
	if fake {
		return fakeVerdict
	}
	return realVerdict
}
