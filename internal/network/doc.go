// Package network lists the host's network interfaces for display.
//
// # Key Components
//
//   - [Enumerator]: joins netlink link and address data with sysfs
//     attributes and driver information
//   - [InterfaceInfo]: one interface as shown by `info interfaces` and the
//     interactive menu
//   - [InterfaceType]: classification used to decide which interfaces the
//     router can be configured on
//
// The netlink, sysfs and ethtool collaborators are interfaces so the
// enumeration logic can be tested without a live host.
package network
