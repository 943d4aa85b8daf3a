package art

// Retcode mirrors the original source's nsd_retcode_t: every tree
// operation returns one of these instead of a Go error, since most of
// the outcomes it reports (NotFound, the struturally-present NoMemory
// path) are not exceptional from the caller's point of view.
type Retcode int

const (
	// Ok means the key was found (FindPath) or now exists (MakePath).
	Ok Retcode = 0
	// NoMemory means an allocation failed partway through MakePath; any
	// nodes allocated during the failing call are discarded and the
	// tree is left as it was. The original C source returns this when
	// malloc fails; Go's allocator panics instead of returning an error,
	// so MakePath can never actually produce it -- the value is kept
	// only to mirror nsd_retcode_t's full range.
	NoMemory Retcode = -1
	// BadParameter flags API-level misuse: a nil tree or path, or a
	// zero-length key.
	BadParameter Retcode = -2
	// NotFound means FindPath's descent ended before consuming the
	// whole key; the path holds the longest existing match.
	NotFound Retcode = 1
)

func (r Retcode) String() string {
	switch r {
	case Ok:
		return "ok"
	case NoMemory:
		return "no_memory"
	case BadParameter:
		return "bad_parameter"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
