package toptree

import (
	"context"
	"log/slog"
)

// rebalance restores the topology tree after the outer edges of the
// clusters on the change list were modified. It works level by level from
// the base clusters up; every level runs four passes:
//
//  1. delete: clusters queued for deletion are unlinked; a parent that
//     keeps one child becomes a one-child cluster and the child is
//     rechecked.
//  2. change: a changed cluster with a sibling stays paired only if the
//     two are still adjacent and carry at most two outer edges together;
//     otherwise the pair is torn apart.
//  3. abandon: every parentless or half-paired cluster pairs with a
//     neighbour if one fits, otherwise it gets a one-child parent. A
//     cluster without outer edges is a root.
//  4. outer edges of every parent touched on this level are recomputed.
//
// Roots found along the way end up in t.foundRoots.
func (t *Tree[E, A]) rebalance() {
	levels := 0
	for len(t.deleteList)+len(t.changeList)+len(t.abandonList) > 0 {
		levels++
		t.rebalanceLevel()
		if t.log.Enabled(context.Background(), slog.LevelDebug) {
			t.log.Debug("toptree_rebalance_level",
				slog.Int("level", levels),
				slog.Int("next_delete", len(t.nextDelete)),
				slog.Int("next_change", len(t.nextChange)),
				slog.Int("next_abandon", len(t.nextAbandon)),
			)
		}
		t.deleteList, t.nextDelete = t.nextDelete, nil
		t.changeList, t.nextChange = t.nextChange, nil
		t.abandonList, t.nextAbandon = t.nextAbandon, nil
	}
	t.opts.Metrics.levels(levels)
}

func (t *Tree[E, A]) rebalanceLevel() {
	var toCalc []*cluster[E, A]

	// 1. delete
	for _, c := range t.deleteList {
		c.split()
		if p := c.parent; p != nil {
			if p.second == nil {
				p.first = nil
				t.queueDelete(p)
			} else {
				if c == p.first {
					p.first = p.second
				}
				p.second = nil
				p.edge = nil
				rest := p.first
				rest.split()
				if !rest.inChange && !rest.inDelete {
					rest.inChange = true
					t.changeList = append(t.changeList, rest)
				}
			}
		}
		c.removeAllOuterEdges()
		c.unlink()
		t.opts.Metrics.clusterDeleted()
	}

	// 2. changed clusters with a sibling
	for _, c := range t.changeList {
		if c.deleted || !c.inChange || c.parent == nil || c.parent.second == nil {
			continue
		}
		c.split()
		p := c.parent
		sib := p.first
		if sib == c {
			sib = p.second
		}
		sib.split()

		adjacent := false
		for _, o := range c.outer {
			if o.cluster == sib {
				adjacent = true
				break
			}
		}
		if adjacent && len(c.outer)+len(sib.outer) <= 4 {
			c.inChange, sib.inChange = false, false
			t.queueChange(p)
			toCalc = append(toCalc, p)
			continue
		}

		p.first, p.second = nil, nil
		t.queueDelete(p)
		for _, ch := range []*cluster[E, A]{c, sib} {
			ch.parent = nil
			ch.inChange = false
			if !ch.inAbandon {
				ch.inAbandon = true
				t.abandonList = append(t.abandonList, ch)
			}
		}
	}

	// 3. the remaining changed clusters are abandoned
	for _, c := range t.changeList {
		if c.inChange && !c.deleted && !c.inAbandon {
			c.inAbandon = true
			t.abandonList = append(t.abandonList, c)
		}
		c.inChange = false
	}

	for _, c := range t.abandonList {
		if c.deleted || !c.inAbandon {
			continue
		}
		c.split()
		n := len(c.outer)
		switch {
		case n == 0:
			if p := c.parent; p != nil && p.second == nil && !p.inDelete {
				p.first = nil
				t.queueDelete(p)
			}
			c.parent = nil
			t.foundRoots = append(t.foundRoots, c)
		case n == 3:
			// single vertex of degree three: pair only with a leaf
			if nb := c.freeNeighbour(func(m int) bool { return m == 1 }); nb != nil {
				toCalc = t.joinWithNeighbour(c, nb, toCalc)
			} else {
				toCalc = t.onlyChild(c, toCalc)
			}
		default:
			if nb := c.freeNeighbour(func(m int) bool { return m <= 4-n }); nb != nil {
				toCalc = t.joinWithNeighbour(c, nb, toCalc)
			} else {
				toCalc = t.onlyChild(c, toCalc)
			}
		}
		c.inAbandon = false
	}

	// 4. outer edges of the new level
	for _, p := range toCalc {
		if p.deleted || p.inDelete {
			continue
		}
		p.calculateOuterEdges(true)
	}
}

// freeNeighbour returns the last neighbour whose outer edge count passes
// fits and which has no parent or a half-paired one.
func (c *cluster[E, A]) freeNeighbour(fits func(int) bool) *cluster[E, A] {
	var nb *cluster[E, A]
	for _, o := range c.outer {
		m := o.cluster
		if m == c || m.deleted || !fits(len(m.outer)) {
			continue
		}
		if m.parent == nil || m.parent.second == nil {
			nb = m
		}
	}
	return nb
}

func (t *Tree[E, A]) joinWithNeighbour(c, nb *cluster[E, A], toCalc []*cluster[E, A]) []*cluster[E, A] {
	c.split()
	nb.split()
	nb.inAbandon = false

	var p *cluster[E, A]
	switch {
	case c.parent == nil && nb.parent == nil:
		p = t.newCluster()
		p.setFirst(c)
		p.setSecond(nb)
		p.inAbandon = true
		t.nextAbandon = append(t.nextAbandon, p)
		return append(toCalc, p)
	case c.parent == nil:
		p = nb.parent
		p.setSecond(c)
	case nb.parent == nil:
		p = c.parent
		p.setSecond(nb)
	default:
		q := nb.parent
		q.first = nil
		t.queueDelete(q)
		p = c.parent
		p.setSecond(nb)
	}
	t.queueChange(p)
	return append(toCalc, p)
}

func (t *Tree[E, A]) onlyChild(c *cluster[E, A], toCalc []*cluster[E, A]) []*cluster[E, A] {
	c.split()
	if c.parent == nil {
		p := t.newCluster()
		p.setFirst(c)
		p.inAbandon = true
		t.nextAbandon = append(t.nextAbandon, p)
		return append(toCalc, p)
	}
	t.queueChange(c.parent)
	return append(toCalc, c.parent)
}

func (t *Tree[E, A]) queueDelete(c *cluster[E, A]) {
	if c.inDelete || c.deleted {
		return
	}
	c.inDelete = true
	c.inChange = false
	c.inAbandon = false
	t.nextDelete = append(t.nextDelete, c)
}

func (t *Tree[E, A]) queueChange(c *cluster[E, A]) {
	if c.inChange || c.inDelete {
		return
	}
	c.inChange = true
	t.nextChange = append(t.nextChange, c)
}
