package service

import (
	"github.com/globalway/tracking-service/internal/core/domain"
	"github.com/globalway/tracking-service/internal/core/ports"
)

// stageLabels are the three ordered stages of the progress indicator.
var stageLabels = [3]string{"Processing", "In Transit", "Delivered"}

// stagePercent maps each lifecycle ordinal to its display percentage.
// "processing" shows a small non-zero value so a freshly registered
// shipment reads as "in the system" rather than untouched.
var stagePercent = [3]int{10, 50, 100}

// ProgressOf projects a shipment status onto the three-stage progress
// indicator. It performs no transitions; it is a pure ordinal lookup.
// An unrecognised status returns domain.ErrInvalidStatus because document
// generation downstream assumes a valid lifecycle position.
func ProgressOf(status domain.ShipmentStatus) (ports.Progress, error) {
	ord, err := status.Ordinal()
	if err != nil {
		return ports.Progress{}, err
	}

	stages := make([]ports.Stage, len(stageLabels))
	for i, label := range stageLabels {
		stages[i] = ports.Stage{Label: label, Completed: i <= ord}
	}

	return ports.Progress{
		Percent: stagePercent[ord],
		Stages:  stages,
	}, nil
}
