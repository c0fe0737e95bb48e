package inventory

import "fmt"

// Sample returns the reference topology: device #22 with two cards, each
// card carrying four ports. Nodes get unique ids 0..10 in the order device,
// cards, ports; links run device→card and card→port.
func Sample() *Inventory {
	inv := New()
	must := func(_ interface{}, err error) {
		if err != nil {
			panic(err)
		}
	}

	must(inv.AddNode("Device", "", "#22", "Device #22"))
	for c := 1; c <= 2; c++ {
		id := fmt.Sprintf("#22_#%d", c)
		must(inv.AddNode("Card", "", id, "Card "+id))
	}
	for c := 1; c <= 2; c++ {
		for p := 1; p <= 4; p++ {
			id := fmt.Sprintf("#22_#%d_#%d", c, p)
			must(inv.AddNode("Port", "", id, "Port "+id))
		}
	}

	for c := 1; c <= 2; c++ {
		must(inv.Link("#22", fmt.Sprintf("#22_#%d", c), 0))
	}
	for c := 1; c <= 2; c++ {
		for p := 1; p <= 4; p++ {
			must(inv.Link(fmt.Sprintf("#22_#%d", c), fmt.Sprintf("#22_#%d_#%d", c, p), 0))
		}
	}

	return inv
}
