package confparse

import (
	"reflect"
	"testing"

	"github.com/vyops/vyops/pkg/model"
)

const sampleConfig = `
set interfaces ethernet eth0 address 'dhcp'
set interfaces ethernet eth0 description 'WAN uplink'
set interfaces ethernet eth1 address '192.168.1.1/24'
set interfaces ethernet eth1 description 'LAN Interface'
set interfaces ethernet eth1 mtu 1500
set interfaces ethernet eth1 vif 100 description 'guest vlan'
set interfaces ethernet eth1 vif 100 address '10.0.100.1/24'
set interfaces ethernet eth2 disable
set interfaces loopback lo
set protocols static route 0.0.0.0/0 next-hop 203.0.113.1
set protocols static route 10.0.0.0/8 description 'to corp'
set protocols static route 10.0.0.0/8 next-hop 192.168.1.254 distance 10
set protocols static route 10.0.0.0/8 next-hop 192.168.2.254 disable
set firewall name WAN_IN default-action drop
set firewall name WAN_IN rule 10 action accept
set firewall name WAN_IN rule 10 state established enable
set firewall name WAN_IN rule 10 state related enable
set firewall name WAN_IN rule 20 action accept
set firewall name WAN_IN rule 20 protocol tcp
set firewall name WAN_IN rule 20 destination port 443
set firewall name WAN_IN rule 20 log enable
set zone-policy zone LAN default-action drop
set zone-policy zone LAN interface eth1
set zone-policy zone LAN from WAN firewall name WAN_TO_LAN
set nat source rule 100 outbound-interface eth0
set nat source rule 100 source address '192.168.1.0/24'
set nat source rule 100 translation address masquerade
set nat destination rule 10 inbound-interface eth0
set nat destination rule 10 destination port 8080
set nat destination rule 10 translation address '192.168.1.50'
set nat destination rule 10 translation port 80
set vpn ipsec site-to-site peer 203.0.113.7 authentication mode pre-shared-secret
set vpn ipsec site-to-site peer 203.0.113.7 authentication pre-shared-secret hunter2
set vpn ipsec site-to-site peer 203.0.113.7 local-address 198.51.100.2
set vpn ipsec site-to-site peer 203.0.113.7 ike-group IKE-1
set vpn ipsec site-to-site peer 203.0.113.7 tunnel 1 local prefix '192.168.1.0/24'
set vpn ipsec site-to-site peer 203.0.113.7 tunnel 1 remote prefix '10.20.0.0/16'
set system host-name edge1
set system time-zone UTC
set system name-server 1.1.1.1
set system ntp server pool.ntp.org
`

func TestParseConfiguration_Interfaces(t *testing.T) {
	cfg := ParseConfiguration(sampleConfig)

	if len(cfg.Interfaces) != 4 {
		t.Fatalf("got %d interfaces, want 4", len(cfg.Interfaces))
	}

	eth1 := cfg.Interface("eth1")
	if eth1 == nil {
		t.Fatal("eth1 not found")
	}
	if eth1.Description != "LAN Interface" {
		t.Errorf("eth1 description = %q", eth1.Description)
	}
	if eth1.MTU != 1500 {
		t.Errorf("eth1 mtu = %d", eth1.MTU)
	}
	if !reflect.DeepEqual(eth1.Addresses, []string{"192.168.1.1/24"}) {
		t.Errorf("eth1 addresses = %q", eth1.Addresses)
	}
	if len(eth1.Vifs) != 1 || eth1.Vifs[0].ID != 100 {
		t.Fatalf("eth1 vifs = %+v", eth1.Vifs)
	}
	if eth1.Vifs[0].Description != "guest vlan" {
		t.Errorf("vif description = %q", eth1.Vifs[0].Description)
	}

	eth2 := cfg.Interface("eth2")
	if eth2 == nil || !eth2.Disabled {
		t.Errorf("eth2 = %+v, want disabled", eth2)
	}

	lo := cfg.Interface("lo")
	if lo == nil || lo.Type != model.InterfaceLoopback {
		t.Errorf("lo = %+v", lo)
	}
}

func TestParseConfiguration_Routes(t *testing.T) {
	cfg := ParseConfiguration(sampleConfig)

	if len(cfg.StaticRoutes) != 3 {
		t.Fatalf("got %d routes, want 3", len(cfg.StaticRoutes))
	}
	def := cfg.StaticRoutes[0]
	if def.Prefix != "0.0.0.0/0" || def.NextHop != "203.0.113.1" {
		t.Errorf("default route = %+v", def)
	}

	// Route-level description is shared across next-hops.
	for _, r := range cfg.StaticRoutes[1:] {
		if r.Description != "to corp" {
			t.Errorf("route %s/%s description = %q", r.Prefix, r.NextHop, r.Description)
		}
	}
	if cfg.StaticRoutes[1].Distance != 10 {
		t.Errorf("distance = %d", cfg.StaticRoutes[1].Distance)
	}
	if !cfg.StaticRoutes[2].Disabled {
		t.Error("second next-hop should be disabled")
	}
}

func TestParseConfiguration_Firewall(t *testing.T) {
	cfg := ParseConfiguration(sampleConfig)

	if len(cfg.FirewallRulesets) != 1 {
		t.Fatalf("got %d rulesets, want 1", len(cfg.FirewallRulesets))
	}
	rs := cfg.FirewallRulesets[0]
	if rs.Name != "WAN_IN" || rs.DefaultAction != "drop" {
		t.Errorf("ruleset = %+v", rs)
	}
	if len(rs.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rs.Rules))
	}
	if !reflect.DeepEqual(rs.Rules[0].States, []string{"established", "related"}) {
		t.Errorf("rule 10 states = %q", rs.Rules[0].States)
	}
	if !rs.Rules[1].Log || rs.Rules[1].DestinationPort != "443" {
		t.Errorf("rule 20 = %+v", rs.Rules[1])
	}

	if len(cfg.FirewallZones) != 1 {
		t.Fatalf("got %d zones, want 1", len(cfg.FirewallZones))
	}
	z := cfg.FirewallZones[0]
	if !reflect.DeepEqual(z.From, []model.ZonePolicy{{Zone: "WAN", Ruleset: "WAN_TO_LAN"}}) {
		t.Errorf("zone policies = %+v", z.From)
	}
}

func TestParseConfiguration_NAT(t *testing.T) {
	cfg := ParseConfiguration(sampleConfig)

	if len(cfg.NATRules) != 2 {
		t.Fatalf("got %d nat rules, want 2", len(cfg.NATRules))
	}
	// Source rules come before destination rules.
	src, dst := cfg.NATRules[0], cfg.NATRules[1]
	if src.Type != model.NATSource || !src.IsMasquerade() {
		t.Errorf("source rule = %+v", src)
	}
	if dst.Type != model.NATDestination || dst.TranslationAddress != "192.168.1.50" || dst.TranslationPort != "80" {
		t.Errorf("destination rule = %+v", dst)
	}
}

func TestParseConfiguration_VPNAndSystem(t *testing.T) {
	cfg := ParseConfiguration(sampleConfig)

	if len(cfg.IPSecSites) != 1 {
		t.Fatalf("got %d ipsec sites, want 1", len(cfg.IPSecSites))
	}
	s := cfg.IPSecSites[0]
	if s.Peer != "203.0.113.7" || s.PreSharedSecret != "hunter2" || s.IKEGroup != "IKE-1" {
		t.Errorf("ipsec site = %+v", s)
	}
	if len(s.Tunnels) != 1 || s.Tunnels[0].LocalPrefix != "192.168.1.0/24" {
		t.Errorf("tunnels = %+v", s.Tunnels)
	}

	sys := cfg.System
	if sys.HostName != "edge1" || sys.TimeZone != "UTC" {
		t.Errorf("system = %+v", sys)
	}
	if !reflect.DeepEqual(sys.NTPServers, []string{"pool.ntp.org"}) {
		t.Errorf("ntp servers = %q", sys.NTPServers)
	}
}

func TestParseConfiguration_Empty(t *testing.T) {
	cfg := ParseConfiguration("")
	if len(cfg.Interfaces) != 0 || len(cfg.StaticRoutes) != 0 || len(cfg.NATRules) != 0 {
		t.Errorf("empty input produced non-empty collections: %+v", cfg)
	}
	if cfg.Interface("eth0") != nil {
		t.Error("Interface lookup on empty config != nil")
	}
}
