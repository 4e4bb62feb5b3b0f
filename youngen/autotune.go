package youngen

// Autotuner thresholds governing how many consecutive over/under-full
// collections must be observed before the promotion age is adjusted.
const (
	overFullThreshold  = 95.0
	overFullTimes      = 3
	minimumLifetime    = 1

	underFullThreshold = 20.0
	underFullTimes     = -3
	maximumLifetime    = 6
)

// autotuneStep adjusts the promotion age based on post-swap survivor
// occupancy. used is `current.PercentageUsed()` taken immediately after
// the semispace flip. Sustained over-full survivors mean objects are
// kept too long — shorten lifetime to promote sooner; sustained
// under-full means objects may be promoted prematurely.
func (y *Young) autotuneStep(used float64) {
	switch {
	case used > overFullThreshold && y.tuneThreshold >= overFullTimes:
		y.tuneThreshold = 0
		if y.lifetime > minimumLifetime {
			y.lifetime--
		}
	case used > overFullThreshold:
		y.tuneThreshold++
	case used < underFullThreshold && y.tuneThreshold <= underFullTimes:
		y.tuneThreshold = 0
		if y.lifetime < maximumLifetime {
			y.lifetime++
		}
	case used < underFullThreshold:
		y.tuneThreshold--
	case y.tuneThreshold > 0:
		y.tuneThreshold--
	case y.tuneThreshold < 0:
		y.tuneThreshold++
	case y.tuneThreshold == 0:
		switch {
		case y.lifetime < y.origLifetime:
			y.lifetime++
		case y.lifetime > y.origLifetime:
			y.lifetime--
		}
	}
}
