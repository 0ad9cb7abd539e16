package txfetch

import "github.com/gabapcia/ethledger/internal/activity"

// ComputeStats summarizes a snapshot. FailedTransactions counts native
// transfers the explorer flagged as reverted.
func ComputeStats(snapshot Snapshot) activity.Stats {
	stats := activity.Stats{
		Addresses:       len(snapshot.Datasets),
		FailedAddresses: len(snapshot.Failures),
	}

	for _, d := range snapshot.Datasets {
		stats.NativeTransfers += len(d.NativeTransfers)
		stats.TokenTransfers += len(d.TokenTransfers)

		for _, tx := range d.NativeTransfers {
			if tx.Failed() {
				stats.FailedTransactions++
			}
		}
	}

	return stats
}
